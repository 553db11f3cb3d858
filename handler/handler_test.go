package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/handler"
	"github.com/dmitrymomot/formhandler/pkg/binder"
)

type greetRequest struct {
	Name string `form:"name"`
}

func greet(_ handler.Context, req greetRequest) handler.Response {
	return handler.JSON(map[string]string{"hello": req.Name})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](binder.Query()))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/?name=jane", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"hello":"jane"`)
	})

	t.Run("bind error is a bad request", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(greet,
			handler.WithBinders[handler.Context, greetRequest](binder.Form()),
			handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusBadRequest)
			}),
		)

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"name": {"x"}}.Encode())))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.ErrorIs(t, got, handler.ErrBadRequest)
		assert.ErrorIs(t, got, binder.ErrMissingContentType)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response { return nil })

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("fail response goes to error handler", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return handler.Fail(handler.ErrNotFound)
		})

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not_found")
	})

	t.Run("fail with plain error hides message", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return handler.Fail(errors.New("secret"))
		})

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret")
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		decorator := func(name string) handler.Decorator[handler.Context, struct{}] {
			return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
				return func(ctx handler.Context, req struct{}) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}

		h := handler.Wrap(
			func(handler.Context, struct{}) handler.Response { return handler.Empty() },
			handler.WithDecorators(decorator("outer"), decorator("inner")),
		)
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{"outer", "inner"}, order)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestClientOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    handler.Client
	}{
		{name: "plain", target: "/", want: handler.ClientBrowser},
		{name: "datastar header", target: "/", headers: map[string]string{handler.DataStarRequest: "true"}, want: handler.ClientDataStar},
		{name: "event stream", target: "/", headers: map[string]string{"Accept": "text/event-stream"}, want: handler.ClientDataStar},
		{name: "signals query", target: "/?datastar=%7B%7D", want: handler.ClientDataStar},
		{name: "htmx", target: "/", headers: map[string]string{handler.HXRequest: "true"}, want: handler.ClientHTMX},
		{name: "boosted htmx", target: "/", headers: map[string]string{handler.HXRequest: "true", handler.HXBoosted: "true"}, want: handler.ClientBrowser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.ClientOf(r))
			assert.Equal(t, tt.want == handler.ClientDataStar, handler.IsDataStar(r))
		})
	}
	assert.Equal(t, "htmx", handler.ClientHTMX.String())
}
