package formhandler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/formhandler/form"
	"github.com/dmitrymomot/formhandler/pkg/registry"
)

// Factory resolves handlers from a registry. Every call resolves again, so
// registry constructors should build a fresh handler each time (see Provide).
type Factory struct {
	handlers *registry.Registry
	forms    *form.Factory
}

// NewFactory creates a handler factory over the handler registry and the form types.
func NewFactory(handlers *registry.Registry, forms *form.Factory) *Factory {
	return &Factory{handlers: handlers, forms: forms}
}

// CreateHandler resolves the handler registered under name.
func (f *Factory) CreateHandler(name string) (Handler, error) {
	h, err := registry.Resolve[Handler](f.handlers, name)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %s", ErrHandlerNotFound, name), err)
	}
	return h, nil
}

// CreateFormWithHandler resolves the handler declared by the form type, binds
// it to that type and applies data and options when they are not nil.
func (f *Factory) CreateFormWithHandler(formType string, data any, options form.Options) (Handler, error) {
	t, err := f.forms.Type(formType)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %s", ErrFormTypeNotFound, formType), err)
	}

	declarer, ok := t.(form.HandlerDeclarer)
	if !ok {
		return nil, fmt.Errorf("%w: form type %s does not declare a handler", ErrFormNotDefined, formType)
	}

	handlerName := declarer.HandlerName()
	if !f.handlers.Has(handlerName) {
		return nil, fmt.Errorf("%w: handler %s declared by %s is not registered", ErrFormTypeNotFound, handlerName, formType)
	}

	h, err := f.CreateHandler(handlerName)
	if err != nil {
		return nil, err
	}

	h.SetFormType(formType)
	if data != nil {
		h.SetData(data)
	}
	if options != nil {
		h.SetFormOptions(options)
	}
	return h, nil
}

// Resolver returns a fresh handler for a request.
type Resolver func(r *http.Request) (Handler, error)

// Named resolves the handler registered under name on every request.
func (f *Factory) Named(name string) Resolver {
	return func(*http.Request) (Handler, error) {
		return f.CreateHandler(name)
	}
}

// ForForm resolves the handler declared by formType on every request.
func (f *Factory) ForForm(formType string, options form.Options) Resolver {
	return func(*http.Request) (Handler, error) {
		return f.CreateFormWithHandler(formType, nil, options)
	}
}

// Provide returns a registry constructor building a new FormHandler per resolution.
//
//	handlers.MustRegister("contact", formhandler.Provide(forms, dispatcher, processor))
func Provide(forms *form.Factory, dispatcher *Dispatcher, p Processor, opts ...Option) registry.Constructor {
	return func() (any, error) {
		return New(forms, dispatcher, p, opts...), nil
	}
}
