package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"valorant-coach-service/internal/http/response"
)

// RateLimiter is a fixed-window per-client limiter, used to slow down
// credential guessing on the auth endpoints. State is process-local.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	hits    map[string][]time.Time
	cleanup time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		limit:   limit,
		window:  window,
		hits:    make(map[string][]time.Time),
		cleanup: time.Now().Add(window),
	}
}

func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIP(r)) {
				w.Header().Set("Retry-After", "60")
				response.Error(w, r, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.After(rl.cleanup) {
		for k, hits := range rl.hits {
			if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
				delete(rl.hits, k)
			}
		}
		rl.cleanup = now.Add(rl.window)
	}

	hits := rl.hits[key]
	pruned := hits[:0]
	for _, hit := range hits {
		if hit.After(cutoff) {
			pruned = append(pruned, hit)
		}
	}
	if len(pruned) >= rl.limit {
		rl.hits[key] = pruned
		return false
	}
	rl.hits[key] = append(pruned, now)
	return true
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
