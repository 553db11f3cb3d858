package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/formhandler/pkg/binder"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
//	h := handler.HandlerFunc[handler.Context, SearchRequest](
//		func(ctx handler.Context, req SearchRequest) handler.Response {
//			return handler.JSON(search(req.Query))
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// StatusResponse is a Response that knows the HTTP status it will write.
// WithStatus returns a copy with the status replaced; the receiver is not modified.
type StatusResponse interface {
	Response
	StatusCode() int
	WithStatus(code int) Response
}

// RedirectResponse is a StatusResponse that sends the client to another location.
type RedirectResponse interface {
	StatusResponse
	Location() string
}

// Bind parses HTTP requests into typed values.
type Bind = binder.Func

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// The first decorator in a list is the outermost wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinders sets request binders applied in order.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler writes the HTTPError status when there is one, 500 otherwise.
func defaultErrorHandler[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		http.Error(ctx.ResponseWriter(), validationErr.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
//	r.Post("/search", handler.Wrap(search,
//		handler.WithBinders[handler.Context, SearchRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, SearchRequest](errorHandler),
//	))
//
// A nil response and a Render error are both passed to the error handler.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := NewContext(w, r).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, errors.Join(ErrBadRequest, err))
				return
			}
		}

		response := finalHandler(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
