package form

import (
	"errors"
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formhandler/pkg/validator"
)

// validateData runs struct tag constraints, then type rules, collecting messages into errs.
// Only misconfiguration is returned as an error.
func (f *Form) validateData(errs Errors) error {
	if err := f.validate.Struct(f.data); err != nil {
		var fieldErrs playground.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("form %s: %w", f.name, err)
		}
		for _, fe := range fieldErrs {
			errs.Add(fieldPath(fe), f.localize(tagMessage(fe)))
		}
	}

	if rv, ok := f.typ.(RuleValidator); ok {
		for _, ve := range validator.Check(rv.Rules(f.data)...) {
			errs.Add(ve.Field, f.localize(message{
				key:      ve.TranslationKey,
				params:   ruleParams(ve.TranslationValues),
				fallback: ve.Message,
			}))
		}
	}
	return nil
}

// fieldPath strips the struct name from the validator namespace: "ContactData.address.city" -> "address.city".
func fieldPath(fe playground.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}
