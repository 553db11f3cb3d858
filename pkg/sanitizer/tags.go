package sanitizer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// TagName is the struct tag read by Struct.
const TagName = "sanitize"

var (
	ErrInvalidTarget = errors.New("sanitizer: target must be a non-nil pointer to struct")
	ErrUnknownRule   = errors.New("sanitizer: unknown rule")
)

var (
	rulesMu sync.RWMutex
	rules   = map[string]func(string) string{
		"trim":       Trim,
		"lower":      ToLower,
		"upper":      ToUpper,
		"title":      ToTitle,
		"whitespace": NormalizeWhitespace,
		"single":     SingleLine,
		"control":    RemoveControlChars,
		"strip_html": StripHTML,
		"safe_html":  SafeHTML,
		"email":      NormalizeEmail,
	}
)

// Register adds or replaces a named rule usable in `sanitize` tags.
func Register(name string, fn func(string) string) {
	rulesMu.Lock()
	defer rulesMu.Unlock()
	rules[name] = fn
}

// Lookup returns the rule registered under name.
func Lookup(name string) (func(string) string, bool) {
	rulesMu.RLock()
	defer rulesMu.RUnlock()
	fn, ok := rules[name]
	return fn, ok
}

// Pipeline composes the rules named in a comma separated tag value.
// An empty tag yields a nil function.
func Pipeline(tag string) (func(string) string, error) {
	var fns []func(string) string
	for name := range strings.SplitSeq(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		fn, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
		fns = append(fns, fn)
	}
	if len(fns) == 0 {
		return nil, nil
	}
	return Compose(fns...), nil
}

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, t := range transforms {
		value = t(value)
	}
	return value
}

// Compose returns transforms as one function.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T { return Apply(value, transforms...) }
}

// Struct applies the rules listed in `sanitize:"rule1,rule2"` tags to string
// fields (and string slices, pointers and nested structs) of v.
//
//	type Comment struct {
//	    Author string `sanitize:"trim,title"`
//	    Body   string `sanitize:"trim,strip_html"`
//	}
func Struct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	return sanitizeStruct(rv.Elem())
}

func sanitizeStruct(rv reflect.Value) error {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := sf.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		clean, err := Pipeline(tag)
		if err != nil {
			return fmt.Errorf("%w on field %s", err, sf.Name)
		}
		if err := sanitizeValue(field, clean); err != nil {
			return err
		}
	}
	return nil
}

// sanitizeValue applies clean to strings; a nil clean only recurses into structs.
func sanitizeValue(field reflect.Value, clean func(string) string) error {
	switch field.Kind() {
	case reflect.String:
		if clean != nil {
			field.SetString(clean(field.String()))
		}
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String && clean != nil {
			for i := range field.Len() {
				elem := field.Index(i)
				elem.SetString(clean(elem.String()))
			}
		}
	case reflect.Ptr:
		if !field.IsNil() {
			return sanitizeValue(field.Elem(), clean)
		}
	case reflect.Struct:
		return sanitizeStruct(field)
	}
	return nil
}

// Strings applies fn to every settable string field of v, recursing into
// pointers, slices of strings and nested structs. Fields tagged `sanitize:"-"` are skipped.
func Strings(v any, fn func(string) string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	walkStrings(rv.Elem(), fn)
	return nil
}

func walkStrings(rv reflect.Value, fn func(string) string) {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() || rt.Field(i).Tag.Get(TagName) == "-" {
			continue
		}
		walkValue(field, fn)
	}
}

func walkValue(field reflect.Value, fn func(string) string) {
	switch field.Kind() {
	case reflect.String:
		field.SetString(fn(field.String()))
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			for i := range field.Len() {
				field.Index(i).SetString(fn(field.Index(i).String()))
			}
		}
	case reflect.Ptr:
		if !field.IsNil() {
			walkValue(field.Elem(), fn)
		}
	case reflect.Struct:
		walkStrings(field, fn)
	}
}
