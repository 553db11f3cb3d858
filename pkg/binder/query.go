package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// Query creates a binder reading URL query parameters with the `form` struct tag,
// so the same struct can back both GET and POST forms.
func Query(opts ...Option) Func {
	cfg := newConfig(opts)
	return func(r *http.Request, v any) error {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
		}
		if err := Values(v, unprefix(cfg.prefix, values), nil); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseQuery, err)
		}
		return nil
	}
}
