package middleware

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	apperrors "taskhub.com/taskhub/internal/errors"
)

var errRateLimited = &apperrors.Exception{
	Message:    "rate limit exceeded",
	StatusCode: http.StatusTooManyRequests,
}

// RateLimiter keeps a token bucket per client IP.
func RateLimiter(perSecond int) echo.MiddlewareFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			mu.Lock()
			limiter, ok := limiters[key]
			if !ok {
				limiter = rate.NewLimiter(rate.Limit(perSecond), perSecond)
				limiters[key] = limiter
			}
			mu.Unlock()

			if !limiter.Allow() {
				return errRateLimited
			}

			return next(c)
		}
	}
}
