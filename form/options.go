package form

import (
	"maps"
	"net/http"
	"strings"
)

// Option keys understood by the form engine. Other keys are kept and passed to
// Type.NewData untouched.
const (
	OptionMethod   = "method"
	OptionAction   = "action"
	OptionName     = "name"
	OptionTrim     = "trim"
	OptionValidate = "validate"
)

// Options configure a form instance. A nil Options is valid and yields defaults.
type Options map[string]any

// Method returns the expected submission method, POST by default.
func (o Options) Method() string {
	if m, ok := o[OptionMethod].(string); ok && m != "" {
		return strings.ToUpper(m)
	}
	return http.MethodPost
}

// Action returns the form action URL, empty meaning the current URL.
func (o Options) Action() string {
	s, _ := o[OptionAction].(string)
	return s
}

// Name returns the field prefix override and whether it was set.
// An empty name disables prefixing.
func (o Options) Name() (string, bool) {
	s, ok := o[OptionName].(string)
	return s, ok
}

// Trim reports whether string fields are trimmed before validation. Default true.
func (o Options) Trim() bool {
	return o.bool(OptionTrim, true)
}

// Validate reports whether constraints run on submission. Default true.
func (o Options) Validate() bool {
	return o.bool(OptionValidate, true)
}

func (o Options) bool(key string, def bool) bool {
	if b, ok := o[key].(bool); ok {
		return b
	}
	return def
}

// Merge returns a copy of o overlaid with other.
func (o Options) Merge(other Options) Options {
	out := make(Options, len(o)+len(other))
	maps.Copy(out, o)
	maps.Copy(out, other)
	return out
}
