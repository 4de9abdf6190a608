package middleware

import (
	"math"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"bookstore-catalog/internal/shared/response"
)

// IPRateLimiter hands out one token bucket per client IP.
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		rate:  r,
		burst: burst,
	}
}

func (l *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	limiter, _ := l.limiters.LoadOrStore(ip, rate.NewLimiter(l.rate, l.burst))
	return limiter.(*rate.Limiter)
}

// RateLimit answers 429 with Retry-After once a client exhausts its bucket.
func RateLimit(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := limiter.GetLimiter(c.ClientIP()).Reserve()
		if !res.OK() {
			c.Abort()
			response.TooManyRequests(c, "1")
			return
		}

		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			c.Abort()
			response.TooManyRequests(c, strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			return
		}

		c.Next()
	}
}
