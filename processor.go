package formhandler

import (
	"context"
	"fmt"
)

// Params are extra values handed to the processor alongside the form data.
type Params map[string]any

// Processor runs the business logic for a valid submission.
// Errors are returned from Handle unchanged apart from wrapping.
type Processor interface {
	Process(ctx context.Context, data any, params Params) error
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, data any, params Params) error

func (f ProcessorFunc) Process(ctx context.Context, data any, params Params) error {
	return f(ctx, data, params)
}

// FormTyper is implemented by processors that know which form type they handle.
// It is used when no form type was set on the handler.
type FormTyper interface {
	FormType() string
}

// Typed adapts a function working on the form data struct T.
// Data is accepted as *T or T; anything else fails with ErrUnexpectedData.
//
//	formhandler.Typed(func(ctx context.Context, msg *ContactData, _ formhandler.Params) error {
//		return store.Save(ctx, msg)
//	})
func Typed[T any](fn func(ctx context.Context, data *T, params Params) error) Processor {
	return ProcessorFunc(func(ctx context.Context, data any, params Params) error {
		switch v := data.(type) {
		case *T:
			if v != nil {
				return fn(ctx, v, params)
			}
		case T:
			return fn(ctx, &v, params)
		}
		var want *T
		return fmt.Errorf("%w: got %T, expected %T", ErrUnexpectedData, data, want)
	})
}

// ForForm binds p to a form type, making it usable without SetFormType.
func ForForm(formType string, p Processor) Processor {
	return formProcessor{Processor: p, formType: formType}
}

type formProcessor struct {
	Processor
	formType string
}

func (p formProcessor) FormType() string { return p.formType }
