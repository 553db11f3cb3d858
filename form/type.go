package form

import (
	"github.com/dmitrymomot/formhandler/pkg/validator"
)

// Type describes one kind of form: its name and the data structure it binds to.
type Type interface {
	Name() string
	// NewData returns a pointer to a fresh data struct.
	NewData(opts Options) any
}

// HandlerDeclarer is implemented by form types bound to a named form handler.
type HandlerDeclarer interface {
	HandlerName() string
}

// RuleValidator is implemented by form types with constraints that struct tags cannot express.
// data is the pointer returned by NewData, already bound and sanitized.
type RuleValidator interface {
	Rules(data any) []validator.Rule
}

// DefineOption configures a type built with Define.
type DefineOption[T any] func(*definition[T])

// WithHandler binds the form type to the handler registered under id.
func WithHandler[T any](id string) DefineOption[T] {
	return func(d *definition[T]) {
		d.handler = id
	}
}

// WithRules adds rule based constraints evaluated after struct tag validation.
func WithRules[T any](fn func(*T) []validator.Rule) DefineOption[T] {
	return func(d *definition[T]) {
		d.rules = fn
	}
}

// WithDefaults sets initial values on every new data struct.
func WithDefaults[T any](fn func(*T, Options)) DefineOption[T] {
	return func(d *definition[T]) {
		d.defaults = fn
	}
}

// Define builds a Type backed by the struct T.
//
//	var Contact = form.Define[ContactData]("contact",
//		form.WithHandler[ContactData]("contact"),
//		form.WithRules(func(d *ContactData) []validator.Rule {
//			return []validator.Rule{validator.MinLen("name", d.Name, 3)}
//		}),
//	)
//
// The returned value implements HandlerDeclarer only when WithHandler was given.
func Define[T any](name string, opts ...DefineOption[T]) Type {
	d := &definition[T]{name: name}
	for _, opt := range opts {
		opt(d)
	}
	if d.handler != "" {
		return &declaredDefinition[T]{definition: d}
	}
	return d
}

type definition[T any] struct {
	name     string
	handler  string
	rules    func(*T) []validator.Rule
	defaults func(*T, Options)
}

func (d *definition[T]) Name() string { return d.name }

func (d *definition[T]) NewData(opts Options) any {
	data := new(T)
	if d.defaults != nil {
		d.defaults(data, opts)
	}
	return data
}

func (d *definition[T]) Rules(data any) []validator.Rule {
	typed, ok := data.(*T)
	if !ok || d.rules == nil {
		return nil
	}
	return d.rules(typed)
}

type declaredDefinition[T any] struct {
	*definition[T]
}

func (d *declaredDefinition[T]) HandlerName() string { return d.handler }
