package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formhandler/pkg/logger"
	"github.com/dmitrymomot/formhandler/pkg/requestid"
)

// ErrorPageParams is the data handed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is the data handed to ErrorHandlerConfig.ErrorToast.
type ErrorToastParams struct {
	Message   string
	Type      string // "warning" for 4xx, "error" for 5xx
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the page for browser requests. Without it a plain text body is written.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorToast renders the notification sent to DataStar and htmx clients.
	ErrorToast func(ErrorToastParams) templ.Component
	// ToastTarget is the container selector, "#toast-container" by default.
	ToastTarget string
	// ToastMode is the DataStar patch mode, PatchPrepend by default.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo is what an error is shown and logged as.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

// classifyError maps err to a status and a user facing message. Validation
// errors win over HTTP errors; anything else is a 500 with a generic message.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var validationErr ValidationError
	var httpErr HTTPError
	switch {
	case errors.As(err, &validationErr):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = formatValidationErrors(validationErr)
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	info.Type, info.LogLevel = "error", slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.Type, info.LogLevel = "warning", slog.LevelWarn
	}
	return info
}

// formatValidationErrors joins every field message, fields sorted.
func formatValidationErrors(validationErr ValidationError) string {
	fields := make([]string, 0, len(validationErr))
	for field := range validationErr {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var messages []string
	for _, field := range fields {
		for _, msg := range validationErr[field] {
			if field == "" {
				messages = append(messages, msg)
				continue
			}
			messages = append(messages, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	if len(messages) == 0 {
		return "Validation failed"
	}
	return strings.Join(messages, "; ")
}

// NewErrorHandler returns an ErrorHandler that logs the failure and renders it
// for the requesting client: a toast for DataStar and htmx, a page otherwise.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("error_handler"))
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)
		client := ClientOf(r)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(reqID),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("client", client.String()),
		)

		toast := ErrorToastParams{Message: info.Message, Type: info.Type, RequestID: reqID}
		var renderErr error
		switch {
		case client == ClientDataStar && cfg.ErrorToast == nil:
			log.WarnContext(r.Context(), "no error toast configured", logger.RequestID(reqID))
			return
		case client == ClientDataStar:
			renderErr = Templ(cfg.ErrorToast(toast), WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode)).
				Render(ctx.ResponseWriter(), r)
		case client == ClientHTMX && cfg.ErrorToast != nil:
			// htmx discards error responses by default, the toast is swapped in with a 200.
			h := ctx.ResponseWriter().Header()
			h.Set(HXRetarget, cfg.ToastTarget)
			h.Set(HXReswap, "afterbegin")
			renderErr = Templ(cfg.ErrorToast(toast)).Render(ctx.ResponseWriter(), r)
		case cfg.ErrorPage == nil:
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		default:
			page := cfg.ErrorPage(ErrorPageParams{
				Error:      info.Message,
				StatusCode: info.StatusCode,
				RequestID:  reqID,
				RetryURL:   r.URL.Path,
			})
			renderErr = TemplPartial(page, page).WithStatus(info.StatusCode).Render(ctx.ResponseWriter(), r)
		}
		if renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error", logger.RequestID(reqID), logger.Error(renderErr))
		}
	}
}
