package ratelimiter

import (
	"fmt"
	"sync"
	"time"
)

// Config describes a token bucket: Capacity tokens at most, RefillRate tokens
// added every RefillInterval.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"5"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1m"`
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the outcome of one Allow call.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is how long a rejected caller should wait. Zero when allowed.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// Limiter keeps one token bucket per key in memory.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New validates cfg and returns an empty limiter.
func New(cfg Config, opts ...Option) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &Limiter{cfg: cfg, now: time.Now, buckets: make(map[string]*bucket)}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow takes one token from the bucket of key. A rejected call consumes nothing.
func (l *Limiter) Allow(key string) Result {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Capacity, lastRefill: now}
		l.buckets[key] = b
	}

	if intervals := int(now.Sub(b.lastRefill) / l.cfg.RefillInterval); intervals > 0 {
		refill := min(intervals, l.cfg.Capacity/l.cfg.RefillRate+1) * l.cfg.RefillRate
		b.tokens = min(b.tokens+refill, l.cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.cfg.RefillInterval)
	}

	res := Result{Limit: l.cfg.Capacity, ResetAt: b.lastRefill.Add(l.cfg.RefillInterval)}
	if b.tokens > 0 {
		b.tokens--
		res.Allowed = true
	}
	res.Remaining = b.tokens
	return res
}

// Prune drops buckets that are full again, keeping memory bounded by active keys.
func (l *Limiter) Prune() {
	now := l.now()
	full := time.Duration(l.cfg.Capacity/l.cfg.RefillRate+1) * l.cfg.RefillInterval

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if now.Sub(b.lastRefill) >= full {
			delete(l.buckets, key)
		}
	}
}
