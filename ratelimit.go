package uidom

import "golang.org/x/time/rate"

// Zero fields of a RateLimitConfig take these: 10 actions per second in
// bursts of up to 20.
const (
	defaultActionRate  float64 = 10.0
	defaultActionBurst int     = 20
)

// RateLimitConfig is a token bucket: Rate tokens per second, Burst at most.
// Zero fields take the defaults; a Rate of -1 disables limiting.
type RateLimitConfig struct {
	Rate  float64
	Burst int
}

func (cfg RateLimitConfig) withDefaults() RateLimitConfig {
	if cfg.Rate == 0 {
		cfg.Rate = defaultActionRate
	}
	if cfg.Burst == 0 {
		cfg.Burst = defaultActionBurst
	}
	return cfg
}

// bucket returns nil when cfg disables limiting.
func (cfg RateLimitConfig) bucket() *rate.Limiter {
	if cfg.Rate == -1 {
		return nil
	}
	cfg = cfg.withDefaults()
	return rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst)
}

// allow takes a token from l. A nil bucket never runs dry.
func allow(l *rate.Limiter) bool {
	return l == nil || l.Allow()
}

// ActionOption configures one action registered with Context.Action.
type ActionOption func(*actionEntry)

type actionEntry struct {
	fn      func()
	limiter *rate.Limiter // nil: only the context limiter applies
}

// WithRateLimit gives the action its own token bucket, checked after the
// context's.
func WithRateLimit(r float64, burst int) ActionOption {
	return WithRateLimitConfig(RateLimitConfig{Rate: r, Burst: burst})
}

// WithRateLimitConfig is WithRateLimit for a whole config. A Rate of -1
// leaves the action with the context limit only.
func WithRateLimitConfig(cfg RateLimitConfig) ActionOption {
	return func(e *actionEntry) {
		e.limiter = cfg.bucket()
	}
}
