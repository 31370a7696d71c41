package http

import (
	"crypto/hmac"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const defaultRateLimitPerMin = 60

// securityValidator checks the shared webhook secret and limits requests per source.
type securityValidator struct {
	secret      string
	rateLimiter *rateLimiter
}

func newSecurityValidator(secret string, requestsPerMin int) *securityValidator {
	return &securityValidator{
		secret:      secret,
		rateLimiter: newRateLimiter(requestsPerMin),
	}
}

// validateSecret accepts everything when no secret is configured.
func (v *securityValidator) validateSecret(got string) error {
	if v.secret == "" {
		return nil
	}
	if !hmac.Equal([]byte(got), []byte(v.secret)) {
		return errInvalidSecret
	}
	return nil
}

func (v *securityValidator) checkRateLimit(source string) error {
	return v.rateLimiter.allow(source)
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// rateLimiter keeps one token bucket per source; idle sources expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = defaultRateLimitPerMin
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			5*time.Minute,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", errRateLimited, key)
	}
	return nil
}
