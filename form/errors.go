package form

import "errors"

var (
	ErrTypeNotFound  = errors.New("form: type not found")
	ErrDuplicateType = errors.New("form: type already registered")
	ErrInvalidType   = errors.New("form: invalid type")
	ErrInvalidData   = errors.New("form: data does not match form type")
)
