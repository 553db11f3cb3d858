package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is one failed rule. TranslationKey and TranslationValues let
// callers localise Message.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is every failure of one Apply call, in rule order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, e := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(e.Field + ": " + e.Message)
	}
	return b.String()
}

// Is makes errors.Is(err, ErrValidationFailed) hold for any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether field failed.
func (ve ValidationErrors) Has(field string) bool {
	return len(ve.Get(field)) > 0
}

// Get returns the messages reported for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, e := range ve {
		if e.Field == field {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Fields returns the failing fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Rule is a check and the error reported when it fails. A nil Check passes.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Check runs rules and returns the failures, nil when all pass.
func Check(rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Check != nil && !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	return errs
}

// Apply is Check returning an error: nil or ValidationErrors.
func Apply(rules ...Rule) error {
	if errs := Check(rules...); len(errs) > 0 {
		return errs
	}
	return nil
}

// When returns rules only if cond holds. Handy for optional fields.
func When(cond bool, rules ...Rule) []Rule {
	if !cond {
		return nil
	}
	return rules
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
