package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formhandler/handler"
	"github.com/dmitrymomot/formhandler/pkg/requestid"
)

func errorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "page:%d:%s:%s", p.StatusCode, p.Error, p.RequestID)
		return err
	})
}

func errorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<div id=\"toast\">%s:%s</div>", p.Type, p.Message)
		return err
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	verr := handler.NewValidationError()
	verr.Add("name", "too short")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLevel  string
	}{
		{"http error", handler.ErrNotFound, http.StatusNotFound, "page:404:not_found:req-1", "WARN"},
		{"validation error", fmt.Errorf("wrapped: %w", verr), http.StatusUnprocessableEntity, "page:422:name: too short:req-1", "WARN"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "page:500:An error occurred processing your request:req-1", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var logs bytes.Buffer
			log := slog.New(slog.NewTextHandler(&logs, nil))
			eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: errorPage})

			r := httptest.NewRequest(http.MethodPost, "/contact", nil)
			r = r.WithContext(requestid.WithContext(r.Context(), "req-1"))
			w := httptest.NewRecorder()

			eh(handler.NewContext(w, r), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Contains(t, logs.String(), "level="+tt.wantLevel)
			assert.Contains(t, logs.String(), "request_id=req-1")
			assert.Contains(t, logs.String(), "component=error_handler")
		})
	}
}

func TestNewErrorHandler_Fallbacks(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("no page configured", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrForbidden)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "forbidden")
	})

	t.Run("datastar toast", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorToast: errorToast})
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()

		eh(handler.NewContext(w, r), handler.ErrTooManyRequests)

		assert.Contains(t, w.Body.String(), "warning:too_many_requests")
		assert.Contains(t, w.Body.String(), "#toast-container")
	})

	t.Run("htmx toast", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: errorPage, ErrorToast: errorToast})
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set(handler.HXRequest, "true")
		w := httptest.NewRecorder()

		eh(handler.NewContext(w, r), errors.New("boom"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "#toast-container", w.Header().Get(handler.HXRetarget))
		assert.Equal(t, "afterbegin", w.Header().Get(handler.HXReswap))
		assert.Equal(t, `<div id="toast">error:An error occurred processing your request</div>`, w.Body.String())
	})

	t.Run("htmx without toast gets the page", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: errorPage})
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set(handler.HXRequest, "true")
		w := httptest.NewRecorder()

		eh(handler.NewContext(w, r), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "page:404:not_found:", w.Body.String())
	})
}
