package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formhandler/pkg/logger"
)

// Check reports whether a dependency is ready.
type Check func(ctx context.Context) error

// HealthHandler answers 200 "READY" when every check passes and 503 "NOT_READY"
// otherwise. Without checks it answers "ALIVE".
func HealthHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(checks) == 0 {
			_, _ = w.Write([]byte("ALIVE"))
			return
		}
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		_, _ = w.Write([]byte("READY"))
	}
}
