package handler

import (
	"context"
	"net/http"
)

// Context is the request scope handed to a HandlerFunc. It is a
// context.Context backed by the request context.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Client reports which front-end library issued the request.
	Client() Client
}

// NewContext creates the default Context for w and r.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{Context: r.Context(), w: w, r: r, client: ClientOf(r)}
}

type httpContext struct {
	context.Context
	w      http.ResponseWriter
	r      *http.Request
	client Client
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *httpContext) Client() Client                      { return c.client }
