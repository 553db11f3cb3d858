package validator

import (
	"fmt"
	"slices"
)

// OneOf validates that value is one of the allowed options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", options),
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"options": options,
			},
		},
	}
}
