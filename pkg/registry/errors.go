package registry

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID            = errors.New("registry: identifier cannot be empty")
	ErrInvalidConstructor = errors.New("registry: constructor cannot be nil")
	ErrDuplicate          = errors.New("registry: identifier already registered")
	ErrNilValue           = errors.New("registry: constructor returned a nil value")
)

// NotFoundError is returned when nothing is registered under ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: no entry registered for %q", e.ID)
}

// ResolutionError wraps a constructor failure.
type ResolutionError struct {
	ID  string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("registry: resolving %q failed: %v", e.ID, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// TypeMismatchError is returned by Resolve when the constructed value has an unexpected type.
type TypeMismatchError struct {
	ID       string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("registry: %q resolved to %s, expected %s", e.ID, e.Got, e.Expected)
}

// IsNotFound reports whether err carries a *NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
