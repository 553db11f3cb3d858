package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formhandler"
	"github.com/dmitrymomot/formhandler/form"
	"github.com/dmitrymomot/formhandler/handler"
	"github.com/dmitrymomot/formhandler/pkg/clientip"
	"github.com/dmitrymomot/formhandler/pkg/ratelimiter"
)

// Routes mounts the contact form endpoints on r:
// GET and POST /contact run the form lifecycle, GET /contact/thanks confirms.
// A nil errorHandler keeps the handler package default. A non-nil limiter
// throttles submissions per client address.
func Routes(r chi.Router, handlers *formhandler.Factory, errorHandler handler.ErrorHandler[handler.Context], limiter *ratelimiter.Limiter) {
	onError := handler.WithErrorHandler[handler.Context, struct{}](errorHandler)

	endpoint := handler.Wrap(
		formhandler.Endpoint(
			handlers.ForForm(FormType, form.Options{form.OptionAction: "/contact"}),
			func(any) handler.Response {
				return handler.Redirect("/contact/thanks")
			},
			func(view *form.View, _ any) handler.Response {
				return handler.TemplPartial(FormFragment(view), Page(view), handler.WithTarget("#contact-form"))
			},
		),
		onError,
	)

	submit := r
	if limiter != nil {
		tooMany := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return handler.Fail(handler.ErrTooManyRequests)
		}, onError)
		submit = r.With(ratelimiter.Middleware(limiter, submitterKey, tooMany))
	}

	r.Get("/contact", endpoint)
	submit.Post("/contact", endpoint)
	r.Get("/contact/thanks", handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Templ(ThanksPage())
	}))
}

// submitterKey prefers the address stored by clientip.Middleware.
func submitterKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r)
}
