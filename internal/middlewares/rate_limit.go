package middlewares

import (
	"context"
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/personal-horoscope/internal/logger"
)

//go:generate mockgen -source=rate_limit.go -destination=rate_limit_mock.go -package=middlewares

// RequestCounter counts requests per key in fixed windows.
type RequestCounter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimitMiddleware rejects clients that exceed limit requests per window within scope.
// Clients are identified by remote IP, so chi's RealIP should run first.
// When the counter fails the request is let through.
func RateLimitMiddleware(counter RequestCounter, scope string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r) + ":" + scope

			count, ttl, err := counter.Increment(r.Context(), key, window)
			if err != nil {
				logger.Log.Warnw("rate limiter unavailable", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				logger.Log.Infow("rate limit exceeded", "key", key, "count", count)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(ttl.Seconds()))))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
