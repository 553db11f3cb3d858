package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// Patch modes for WithPatchMode.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// TemplOption configures the DataStar element patch.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the DataStar patch applies to.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the DataStar patch is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	full    templ.Component
	partial templ.Component
	status  int
	options []TemplOption
}

// Render picks the component by client: the partial is patched over SSE for
// DataStar and written as a fragment for htmx, browsers get the full page.
// SSE streams always answer 200.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	component := t.full
	switch ClientOf(r) {
	case ClientDataStar:
		return datastar.NewSSE(w, r).PatchElementTempl(t.partial, t.options...)
	case ClientHTMX:
		component = t.partial
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	return component.Render(r.Context(), w)
}

func (t templResponse) StatusCode() int { return t.status }

func (t templResponse) WithStatus(code int) Response {
	t.status = code
	return t
}

// Templ creates a 200 response from a templ component.
//
//	return handler.Templ(views.ThanksPage())
func Templ(component templ.Component, opts ...TemplOption) StatusResponse {
	return TemplPartial(component, component, opts...)
}

// TemplPartial answers DataStar and htmx requests with partial and browsers with full.
//
//	return handler.TemplPartial(views.ContactForm(view), views.ContactPage(view), handler.WithTarget("#contact-form"))
func TemplPartial(partial, full templ.Component, opts ...TemplOption) StatusResponse {
	return templResponse{full: full, partial: partial, status: http.StatusOK, options: opts}
}
