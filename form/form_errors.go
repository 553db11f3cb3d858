package form

import (
	"slices"
	"sort"

	"github.com/dmitrymomot/formhandler/handler"
)

// Errors maps field names to messages. Form level messages use the empty key.
type Errors map[string][]string

// Add appends a message for field. Use "" for form level errors.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Field returns the messages for a field.
func (e Errors) Field(name string) []string {
	return e[name]
}

// Form returns the form level messages.
func (e Errors) Form() []string {
	return e[""]
}

// Fields returns the field names with errors in sorted order, form level excluded.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field, msgs := range e {
		if field != "" && len(msgs) > 0 {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty reports whether no message was recorded.
func (e Errors) IsEmpty() bool {
	for _, msgs := range e {
		if len(msgs) > 0 {
			return false
		}
	}
	return true
}

// ValidationError converts the errors for HTTP rendering (422 responses).
func (e Errors) ValidationError() handler.ValidationError {
	verr := handler.NewValidationError()
	for field, msgs := range e {
		verr[field] = slices.Clone(msgs)
	}
	return verr
}
