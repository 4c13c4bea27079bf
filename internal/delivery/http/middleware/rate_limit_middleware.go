package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"lifelink-backend/config"
	"lifelink-backend/pkg/response"

	"golang.org/x/time/rate"
)

const (
	visitorCleanupInterval = 1 * time.Minute
	visitorStaleThreshold  = 3 * time.Minute
)

// RateLimitMiddleware keeps one token-bucket limiter per client IP. Stale
// entries are swept by a background goroutine.
type RateLimitMiddleware struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
	}

	go m.cleanupVisitors()

	return m
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !m.getLimiter(ip).Allow() {
			response.Error(w, http.StatusTooManyRequests, "Too many requests", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) getLimiter(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, exists := m.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(m.limit, m.burst)
		m.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (m *RateLimitMiddleware) cleanupVisitors() {
	for {
		time.Sleep(visitorCleanupInterval)
		m.mu.Lock()
		for ip, v := range m.visitors {
			if time.Since(v.lastSeen) > visitorStaleThreshold {
				delete(m.visitors, ip)
			}
		}
		m.mu.Unlock()
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First entry is the originating client; the rest are proxies
		if idx := strings.Index(forwarded, ","); idx != -1 {
			forwarded = forwarded[:idx]
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
