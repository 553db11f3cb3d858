package formhandler

import "errors"

var (
	// ErrFormNotDefined is returned when a form is needed but none is bound,
	// or when a form type does not declare its handler.
	ErrFormNotDefined = errors.New("formhandler: form not defined")

	// ErrFormTypeNotFound is returned when a form type or its declared handler cannot be found.
	ErrFormTypeNotFound = errors.New("formhandler: form type not found")

	// ErrHandlerNotFound is returned when a handler is missing from the registry,
	// fails to resolve, or resolves to a value that is not a Handler.
	ErrHandlerNotFound = errors.New("formhandler: handler not found")

	// ErrCallbackContractViolation is returned when a success or render callback
	// returns nil or a response without a status code.
	ErrCallbackContractViolation = errors.New("formhandler: callback must return a response with a status code")

	// ErrNilRequest is returned by Handle when called without a request.
	ErrNilRequest = errors.New("formhandler: request is nil")

	// ErrUnexpectedData is returned by Typed processors receiving data of another type.
	ErrUnexpectedData = errors.New("formhandler: unexpected data type")
)
