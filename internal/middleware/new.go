package middleware

import (
	"careermate/config"
	"careermate/pkg/log"
)

type Middleware struct {
	l         log.Logger
	rateLimit config.RateLimitConfig
	limiters  *clientLimiters
}

func New(l log.Logger, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		rateLimit: rateLimit,
		limiters:  newClientLimiters(rateLimit.PerMinute, rateLimit.Burst),
	}
}
