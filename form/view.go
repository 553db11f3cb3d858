package form

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrymomot/formhandler/pkg/binder"
	"github.com/dmitrymomot/formhandler/pkg/sanitizer"
)

// View is the render model of a form.
type View struct {
	Name      string
	Method    string
	Action    string
	Submitted bool
	Valid     bool
	// Errors holds form level messages such as unreadable submissions.
	Errors []string
	Fields []FieldView
}

// FieldView is the render model of one data field.
type FieldView struct {
	Name     string // key in Errors and in unprefixed submissions
	FullName string // input name attribute, "contact[email]" for a form named contact
	ID       string
	Label    string
	Value    string
	Values   []string // set for slice fields
	Errors   []string
	Required bool
}

// Field returns the field view by name.
func (v *View) Field(name string) (FieldView, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldView{}, false
}

// HasErrors reports whether the form or any field carries an error.
func (v *View) HasErrors() bool {
	if len(v.Errors) > 0 {
		return true
	}
	return slices.ContainsFunc(v.Fields, func(f FieldView) bool { return len(f.Errors) > 0 })
}

// CreateView builds the render model from the current data and errors.
func (f *Form) CreateView() *View {
	errs := f.Errors()
	view := &View{
		Name:      f.name,
		Method:    f.opts.Method(),
		Action:    f.opts.Action(),
		Submitted: f.submitted,
		Valid:     f.IsValid(),
		Errors:    slices.Clone(errs.Form()),
	}

	rv := reflect.ValueOf(f.data).Elem()
	for _, fd := range describeFields(f.data) {
		fv := FieldView{
			Name:     fd.name,
			FullName: f.fieldName(fd.name),
			ID:       fd.name,
			Label:    fd.label,
			Errors:   slices.Clone(errs.Field(fd.name)),
			Required: fd.required,
		}
		if f.name != "" {
			fv.ID = f.name + "_" + fd.name
		}

		field := rv.Field(fd.index)
		if field.Kind() == reflect.Slice {
			fv.Values = formatSlice(field)
		} else {
			fv.Value = formatValue(field)
		}
		view.Fields = append(view.Fields, fv)
	}
	return view
}

type fieldDescriptor struct {
	index    int
	name     string
	jsonName string
	label    string
	required bool
}

// fieldName returns the submitted key of a field, prefixed with the form name when set.
func (f *Form) fieldName(name string) string {
	if f.name == "" {
		return name
	}
	return f.name + "[" + name + "]"
}

// describeFields lists the bindable fields of the struct behind data in declaration order.
func describeFields(data any) []fieldDescriptor {
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil
	}
	rt := rv.Elem().Type()

	fields := make([]fieldDescriptor, 0, rt.NumField())
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() || sf.Tag.Get("file") != "" {
			continue
		}
		name, skip := binder.FieldName(sf, "form")
		if skip {
			continue
		}
		label := sf.Tag.Get("label")
		if label == "" {
			label = sanitizer.ToTitle(strings.NewReplacer("_", " ", "-", " ").Replace(name))
		}
		fields = append(fields, fieldDescriptor{
			index:    i,
			name:     name,
			jsonName: jsonName(sf),
			label:    label,
			required: hasRequired(sf.Tag.Get("validate")),
		})
	}
	return fields
}

func jsonName(sf reflect.StructField) string {
	if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return sf.Name
}

func hasRequired(tag string) bool {
	for rule := range strings.SplitSeq(tag, ",") {
		if rule == "required" {
			return true
		}
	}
	return false
}

func formatSlice(v reflect.Value) []string {
	out := make([]string, 0, v.Len())
	for i := range v.Len() {
		out = append(out, formatValue(v.Index(i)))
	}
	return out
}

func formatValue(v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		if v.Bool() {
			return "true"
		}
		return ""
	}
	if v.IsZero() {
		return ""
	}
	return fmt.Sprint(v.Interface())
}
