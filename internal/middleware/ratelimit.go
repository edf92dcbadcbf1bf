package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"careermate/pkg/response"
)

// clientLimiters holds one token bucket per client IP. Entries expire after
// five minutes of inactivity so idle clients do not pin memory.
type clientLimiters struct {
	cache *expirable.LRU[string, *rate.Limiter]
	rate  rate.Limit
	burst int
}

func newClientLimiters(perMinute, burst int) *clientLimiters {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 10
	}
	return &clientLimiters{
		cache: expirable.NewLRU[string, *rate.Limiter](1000, nil, time.Minute*5),
		rate:  rate.Limit(float64(perMinute) / 60.0),
		burst: burst,
	}
}

func (cl *clientLimiters) allow(key string) bool {
	limiter, ok := cl.cache.Get(key)
	if !ok {
		limiter = rate.NewLimiter(cl.rate, cl.burst)
		cl.cache.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles requests per client IP. Disabled limiting passes
// everything through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.rateLimit.Enabled {
			c.Next()
			return
		}

		if !m.limiters.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: client %s exceeded %d req/min", c.ClientIP(), m.rateLimit.PerMinute)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
