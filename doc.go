// Package formhandler runs the lifecycle of an HTML form behind a single HTTP
// endpoint: build the form, bind the request, then either process a valid
// submission or render the form again.
//
// # Lifecycle
//
// A Handler is bound to one form type and serves one request. Handle builds the
// form on first use, binds the request and then takes one of three paths:
//
//   - Submitted and valid: the form data becomes the handler data. When
//     listeners exist for EventProcess they run first and may replace
//     Event.Data; the processor receives whatever Event.Data holds afterwards.
//     EventSuccess is dispatched, then onSuccess builds the response. Redirects
//     are answered with 303 See Other.
//   - Submitted and invalid: render builds the response. A 200 response is
//     turned into 422 Unprocessable Entity and EventFail is dispatched once.
//   - Not submitted: the render response is returned untouched.
//
// Callbacks must return a handler.StatusResponse; anything else fails with
// ErrCallbackContractViolation. Processor and listener errors are returned to
// the caller wrapped, never swallowed.
//
// The current step is reported by State: empty, built, then submitted_valid,
// submitted_invalid or unsubmitted.
//
// # Resolution
//
// Handlers live in a registry keyed by id, with constructors building a fresh
// FormHandler per resolution:
//
//	handlers := registry.New()
//	handlers.MustRegister("contact", formhandler.Provide(forms, dispatcher,
//		formhandler.Typed(func(ctx context.Context, msg *contact.Message, _ formhandler.Params) error {
//			return store.Save(ctx, msg)
//		}),
//	))
//	factory := formhandler.NewFactory(handlers, forms)
//
// Factory.CreateHandler resolves by id. Factory.CreateFormWithHandler starts
// from a form type that declares its handler (form.HandlerDeclarer), resolves
// that handler and binds it to the type.
//
// # HTTP
//
// Endpoint plugs a resolver and the two callbacks into handler.Wrap:
//
//	r.Handle("/contact", handler.Wrap(formhandler.Endpoint(
//		factory.ForForm("contact", nil),
//		func(any) handler.Response { return handler.Redirect("/contact/thanks") },
//		func(v *form.View, _ any) handler.Response { return handler.Templ(views.ContactPage(v)) },
//	)))
package formhandler
