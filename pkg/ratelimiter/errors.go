package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned by New for non-positive limits.
	ErrInvalidConfig = errors.New("ratelimiter: invalid configuration")
	// ErrLimited marks a request rejected by the limiter.
	ErrLimited = errors.New("ratelimiter: too many requests")
)
