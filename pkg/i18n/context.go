package i18n

import (
	"context"
	"net/http"
)

type localeContextKey struct{}

// WithLocale stores lang in ctx.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// Locale returns the language stored in ctx, or DefaultLanguage.
func Locale(ctx context.Context) string {
	if lang, ok := ctx.Value(localeContextKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}

// Middleware stores the request language in the request context.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), t.FromRequest(r))))
		})
	}
}
