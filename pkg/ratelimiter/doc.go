// Package ratelimiter is an in-memory token bucket limiter with an HTTP
// middleware.
//
//	limiter, err := ratelimiter.New(ratelimiter.Config{Capacity: 5, RefillRate: 1, RefillInterval: time.Minute})
//	r.With(ratelimiter.Middleware(limiter, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	}, nil)).Post("/contact", submit)
//
// Buckets start full. Refill happens lazily on access in whole intervals.
// Prune removes buckets that would be full again; call it periodically in long
// running processes.
package ratelimiter
