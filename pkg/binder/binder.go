package binder

import (
	"mime"
	"net/http"
	"strings"
)

// Func binds request data into v, which must be a pointer to a struct.
type Func func(r *http.Request, v any) error

// Option configures form and query binders.
type Option func(*config)

type config struct {
	prefix    string
	maxMemory int64
}

func newConfig(opts []Option) config {
	cfg := config{maxMemory: DefaultMaxMemory}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPrefix makes the binder read keys of the form "prefix[field]".
// Plain "field" keys are still accepted when the prefixed key is absent.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// WithMaxMemory overrides the memory limit used when parsing multipart bodies.
func WithMaxMemory(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxMemory = n
		}
	}
}

// MediaType returns the request media type without parameters, lowercased.
func MediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		if idx := strings.Index(ct, ";"); idx != -1 {
			ct = ct[:idx]
		}
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}

// Request picks a binder from the request: query string for bodiless methods,
// JSON or form data otherwise, based on the Content-Type header.
func Request(opts ...Option) Func {
	form, query, js := Form(opts...), Query(opts...), JSON()
	return func(r *http.Request, v any) error {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodDelete:
			return query(r, v)
		}
		if MediaType(r) == "application/json" {
			return js(r, v)
		}
		return form(r, v)
	}
}

// unprefix rewrites "prefix[field]" keys to "field". Prefixed keys win over plain ones.
func unprefix[T any](prefix string, values map[string][]T) map[string][]T {
	if prefix == "" || len(values) == 0 {
		return values
	}

	out := make(map[string][]T, len(values))
	open := prefix + "["
	for key, vals := range values {
		if _, ok := out[key]; !ok {
			out[key] = vals
		}
		if strings.HasPrefix(key, open) && strings.HasSuffix(key, "]") {
			field := key[len(open) : len(key)-1]
			field = strings.TrimSuffix(field, "][")
			if field != "" {
				out[field] = vals
			}
		}
	}
	return out
}
