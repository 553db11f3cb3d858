package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Error returns the "error" attribute, or an empty one for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// RequestID returns the "request_id" attribute, or an empty one for "".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records a lifecycle event name.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the registry id of a form handler.
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// FormType records the form type name.
func FormType(name string) slog.Attr {
	return slog.String("form_type", name)
}

// State records a lifecycle state.
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Fields lists the fields that failed validation, sorted by the caller.
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
