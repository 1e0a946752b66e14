package middleware

import (
	"smart-todo/config"
	"smart-todo/pkg/log"
	"smart-todo/pkg/metrics"
	"smart-todo/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	limiter      *rateLimiter
	metrics      *metrics.Metrics
}

// New builds the shared middleware set. A zero rateCfg.RequestsPerMin or disabled
// rate limiting turns RateLimit into a no-op.
func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, rateCfg config.RateLimitConfig, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		metrics:      m,
	}
	if rateCfg.Enabled && rateCfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rateCfg.RequestsPerMin)
	}
	return mw
}
