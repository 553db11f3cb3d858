package binder

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// FieldError reports a value that could not be decoded into a struct field.
type FieldError struct {
	Field string // request parameter name
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

var (
	textUnmarshaler = reflect.TypeFor[encoding.TextUnmarshaler]()
	durationType    = reflect.TypeFor[time.Duration]()
)

// structValue returns the addressable struct behind v.
func structValue(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, ErrInvalidTarget
	}
	return rv.Elem(), nil
}

// FieldName returns the parameter name for a struct field read from tagName,
// falling back to the lowercased field name. skip is true for "-" tags.
func FieldName(field reflect.StructField, tagName string) (name string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "-" {
		return "", true
	}
	if name, _, _ = strings.Cut(tag, ","); name != "" {
		return name, false
	}
	return strings.ToLower(field.Name), false
}

// decodeField stores values into field. Slices take every value, with comma
// separated entries split; scalars take the first value.
func decodeField(field reflect.Value, name string, values []string) error {
	if field.Kind() == reflect.Slice && !implementsText(field.Type()) {
		var parts []string
		for _, v := range values {
			for p := range strings.SplitSeq(v, ",") {
				parts = append(parts, strings.TrimSpace(p))
			}
		}
		slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := decodeScalar(slice.Index(i), p); err != nil {
				return &FieldError{Field: name, Value: p, Err: err}
			}
		}
		field.Set(slice)
		return nil
	}

	if len(values) == 0 {
		return nil
	}
	if err := decodeScalar(field, values[0]); err != nil {
		return &FieldError{Field: name, Value: values[0], Err: err}
	}
	return nil
}

func implementsText(t reflect.Type) bool {
	return reflect.PointerTo(t).Implements(textUnmarshaler)
}

// decodeScalar parses s into v, allocating pointers as needed.
func decodeScalar(v reflect.Value, s string) error {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decodeScalar(v.Elem(), s)
	}
	if implementsText(v.Type()) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}
	if v.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err == nil {
			v.SetInt(int64(d))
		}
		return err
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
	return nil
}

// parseBool accepts strconv.ParseBool input plus checkbox style on/off and yes/no.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return strconv.ParseBool(s)
}
