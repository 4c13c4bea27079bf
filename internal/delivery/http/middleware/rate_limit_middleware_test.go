package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIPUsesFirstForwardedEntry(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		want      string
	}{
		{"single entry", "203.0.113.7", "203.0.113.7"},
		{"proxy chain", "203.0.113.7, 10.0.0.1, 10.0.0.2", "203.0.113.7"},
		{"padded entry", "  203.0.113.7 ,10.0.0.1", "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Forwarded-For", tt.forwarded)

			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:54321"

	assert.Equal(t, "192.0.2.10", clientIP(req))
}
