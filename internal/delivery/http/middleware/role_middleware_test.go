package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifelink-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := RequireRole(entity.RoleHospitalAdmin, entity.RolePlatformAdmin)(next)

	tests := []struct {
		role string
		want int
	}{
		{"hospital_admin", http.StatusOK},
		{"platform_admin", http.StatusOK},
		{"individual", http.StatusForbidden},
		{"", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, requestWithRole(tt.role))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireRoleMissingContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := RequirePlatformAdmin(next)

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
