package form

import (
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// Translator localises error messages by key. ok is false when lang has no
// translation for key; the built-in English message is used then.
type Translator interface {
	Lookup(lang, key string, params map[string]string) (string, bool)
}

// WithTranslator localises validation and bind error messages in the language
// stored in the request context by i18n.Middleware.
func WithTranslator(t Translator) FactoryOption {
	return func(f *Factory) {
		f.translator = t
	}
}

// message is an error message with its translation key.
type message struct {
	key      string
	params   map[string]string
	fallback string
}

func (f *Form) localize(m message) string {
	if f.translator == nil {
		return m.fallback
	}
	if s, ok := f.translator.Lookup(f.lang, m.key, m.params); ok {
		return s
	}
	return m.fallback
}

// tagMessage describes a failed struct tag constraint. Keys and parameter
// names match the ones used by pkg/validator rules.
func tagMessage(fe playground.FieldError) message {
	param := fe.Param()
	params := map[string]string{"field": fe.Field()}
	m := func(key, name, fallback string) message {
		if name != "" {
			params[name] = param
		}
		return message{key: key, params: params, fallback: fallback}
	}

	switch fe.Tag() {
	case "required", "required_if", "required_unless", "required_with", "required_without":
		return m("validation.required", "", "field is required")
	case "min", "gte":
		return m("validation.min"+kindSuffix(fe), "min", fmt.Sprintf("must be at least %s%s", param, unit(fe)))
	case "max", "lte":
		return m("validation.max"+kindSuffix(fe), "max", fmt.Sprintf("must be at most %s%s", param, unit(fe)))
	case "len":
		return m("validation.exact_length", "length", fmt.Sprintf("must be exactly %s characters long", param))
	case "email":
		return m("validation.email", "", "must be a valid email address")
	case "url", "http_url":
		return m("validation.url", "", "must be a valid URL")
	case "oneof":
		param = strings.ReplaceAll(param, " ", ", ")
		return m("validation.one_of", "options", "must be one of: "+param)
	case "uuid", "uuid4":
		return m("validation.uuid", "", "must be a valid UUID")
	case "eqfield":
		param = strings.ToLower(param)
		return m("validation.eq_field", "other", "must match "+param)
	case "alphanum":
		return m("validation.alphanum", "", "must contain only letters and digits")
	case "numeric", "number":
		return m("validation.numeric", "", "must be a number")
	}
	param = fe.Tag()
	return m("validation.failed", "rule", fmt.Sprintf("failed %s validation", param))
}

// kindSuffix selects the length or count variant of min and max keys.
func kindSuffix(fe playground.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return "_length"
	case reflect.Slice, reflect.Map, reflect.Array:
		return "_items"
	}
	return ""
}

// unit describes what a length constraint counts for the field kind.
func unit(fe playground.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return " characters long"
	case reflect.Slice, reflect.Map, reflect.Array:
		return " items"
	}
	return ""
}

// ruleParams renders translation values as strings. Slices are joined with commas.
func ruleParams(values map[string]any) map[string]string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		if s, ok := v.([]string); ok {
			params[k] = strings.Join(s, ", ")
			continue
		}
		params[k] = fmt.Sprint(v)
	}
	return params
}
