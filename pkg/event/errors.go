package event

import "errors"

var (
	ErrEmptyEventName = errors.New("event name cannot be empty")
	ErrNilListener    = errors.New("listener cannot be nil")
	ErrListenerFailed = errors.New("event listener failed")
)
