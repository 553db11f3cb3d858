package clientip

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are consulted in order before falling back to RemoteAddr.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// FromRequest returns the client address. The first valid address found in
// headers wins; X-Forwarded-For style lists yield their first valid entry.
// Without headers only RemoteAddr is used. Returns "" when nothing parses.
func FromRequest(r *http.Request, headers ...string) string {
	for _, h := range headers {
		for candidate := range strings.SplitSeq(r.Header.Get(h), ",") {
			if ip := normalize(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return normalize(host)
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware resolves the client address once per request using headers
// (DefaultHeaders when none are given) and stores it in the request context.
func Middleware(headers ...string) func(http.Handler) http.Handler {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), FromRequest(r, headers...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
