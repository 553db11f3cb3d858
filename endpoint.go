package formhandler

import (
	"errors"

	"github.com/dmitrymomot/formhandler/handler"
	"github.com/dmitrymomot/formhandler/pkg/registry"
)

// Endpoint adapts a form lifecycle to handler.Wrap. Each request resolves a new
// handler. Unknown handlers and form types are reported as 404, other
// failures, including broken constructors, reach the error handler unchanged.
//
//	r.Handle("/contact", handler.Wrap(formhandler.Endpoint(
//		handlers.ForForm("contact", nil),
//		func(any) handler.Response { return handler.Redirect("/contact/thanks") },
//		func(v *form.View, _ any) handler.Response { return handler.Templ(views.Contact(v)) },
//	)))
func Endpoint(resolve Resolver, onSuccess SuccessFunc, render RenderFunc) handler.HandlerFunc[handler.Context, struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		r := ctx.Request()

		h, err := resolve(r)
		if err != nil {
			if registry.IsNotFound(err) || errors.Is(err, ErrFormTypeNotFound) {
				err = errors.Join(handler.ErrNotFound, err)
			}
			return handler.Fail(err)
		}

		resp, err := h.Handle(r, onSuccess, render)
		if err != nil {
			return handler.Fail(err)
		}
		return resp
	}
}
