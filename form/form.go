package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formhandler/pkg/binder"
	"github.com/dmitrymomot/formhandler/pkg/i18n"
	"github.com/dmitrymomot/formhandler/pkg/sanitizer"
)

// Form is one instance of a form type bound to a data struct.
// It is not safe for concurrent use; create one per request.
type Form struct {
	typ        Type
	name       string
	data       any
	opts       Options
	validate   *playground.Validate
	translator Translator
	lang       string
	submitted  bool
	handled    bool
	errors     Errors
}

// Name returns the form name, used as the field prefix.
func (f *Form) Name() string { return f.name }

// Type returns the form type.
func (f *Form) Type() Type { return f.typ }

// Options returns the options the form was created with.
func (f *Form) Options() Options { return f.opts }

// Data returns the pointer to the bound data struct.
func (f *Form) Data() any { return f.data }

// SetData replaces the data. Rejected once a request has been handled.
func (f *Form) SetData(data any) error {
	if f.handled {
		return fmt.Errorf("form %s: cannot set data after the request was handled", f.name)
	}
	coerced, err := coerceData(f.typ.NewData(f.opts), data)
	if err != nil {
		return err
	}
	f.data = coerced
	return nil
}

// IsSubmitted reports whether the handled request submitted this form.
func (f *Form) IsSubmitted() bool { return f.submitted }

// IsValid reports whether the form was submitted without errors.
// An unsubmitted form is never valid.
func (f *Form) IsValid() bool {
	return f.submitted && f.errors.IsEmpty()
}

// Errors returns the collected errors. Empty before submission.
func (f *Form) Errors() Errors {
	if f.errors == nil {
		return Errors{}
	}
	return f.errors
}

// HandleRequest binds r to the form when r submits it, then sanitizes and
// validates the data. Malformed input is recorded as a form level error; the
// returned error is reserved for configuration problems.
func (f *Form) HandleRequest(r *http.Request) error {
	f.handled = true
	f.errors = Errors{}
	f.lang = i18n.Locale(r.Context())

	if !f.isSubmission(r) {
		f.submitted = false
		return nil
	}
	f.submitted = true

	if err := f.bind(r); err != nil {
		f.errors.Add("", f.localize(bindMessage(err)))
		return nil
	}

	if f.opts.Trim() {
		if err := sanitizer.Strings(f.data, sanitizer.Trim); err != nil {
			return fmt.Errorf("form %s: %w", f.name, err)
		}
	}
	if err := sanitizer.Struct(f.data); err != nil {
		return fmt.Errorf("form %s: %w", f.name, err)
	}

	if !f.opts.Validate() {
		return nil
	}
	return f.validateData(f.errors)
}

func (f *Form) isSubmission(r *http.Request) bool {
	if r.Method != f.opts.Method() {
		return false
	}
	// A GET form is only submitted when the query carries one of its fields.
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return f.hasFields(r.URL.Query())
	}
	return f.hasBodyFields(r)
}

// hasBodyFields reports whether the request body carries one of the form's
// fields. Bodies that cannot be inspected count as a submission so the bind
// step reports them; an empty body never does.
func (f *Form) hasBodyFields(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return false
	}

	switch binder.MediaType(r) {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return true
		}
		return f.hasFields(r.PostForm)

	case "multipart/form-data":
		if err := r.ParseMultipartForm(binder.DefaultMaxMemory); err != nil {
			return true
		}
		if r.MultipartForm == nil {
			return false
		}
		if f.hasFields(r.MultipartForm.Value) {
			return true
		}
		for key := range r.MultipartForm.File {
			if f.ownsKey(key) {
				return true
			}
		}
		return false

	case "application/json":
		keys, ok := jsonKeys(r)
		if !ok {
			return true
		}
		for _, field := range describeFields(f.data) {
			for _, key := range keys {
				if strings.EqualFold(key, field.name) || strings.EqualFold(key, field.jsonName) {
					return true
				}
			}
		}
		return false
	}
	return true
}

func (f *Form) hasFields(values url.Values) bool {
	for key := range values {
		if f.ownsKey(key) {
			return true
		}
	}
	for _, field := range describeFields(f.data) {
		if values.Has(field.name) {
			return true
		}
	}
	return false
}

// ownsKey reports whether key is namespaced under the form name.
func (f *Form) ownsKey(key string) bool {
	return f.name != "" && strings.HasPrefix(key, f.name+"[")
}

// jsonKeys reads the top level keys of a JSON object body and restores the
// body for the binder.
func jsonKeys(r *http.Request) ([]string, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, binder.DefaultMaxJSONSize+1))
	if err != nil {
		return nil, false
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, false
	}
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	return keys, true
}

func (f *Form) bind(r *http.Request) error {
	var opts []binder.Option
	if f.name != "" {
		opts = append(opts, binder.WithPrefix(f.name))
	}
	return binder.Request(opts...)(r, f.data)
}

func bindMessage(err error) message {
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return message{key: "form.unsupported_format", fallback: "unsupported submission format"}
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return message{key: "form.malformed_json", fallback: "submitted JSON is malformed"}
	}
	var fe *binder.FieldError
	if errors.As(err, &fe) {
		return message{
			key:      "form.invalid_value",
			params:   map[string]string{"field": fe.Field},
			fallback: "invalid value for " + fe.Field,
		}
	}
	return message{key: "form.unreadable", fallback: "submitted data could not be read"}
}
