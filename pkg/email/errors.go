package email

import "errors"

var (
	ErrInvalidConfig  = errors.New("email: invalid config")
	ErrInvalidMessage = errors.New("email: invalid message")
	ErrSendFailed     = errors.New("email: failed to send")
)
