package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"reflect"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form creates a binder for application/x-www-form-urlencoded and multipart/form-data bodies.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//   - `file:"name"` - binds to uploaded file "name"
//
// Fields without a form tag bind to their lowercased name.
// Supported field types are strings, integers, floats, bools, time.Duration,
// encoding.TextUnmarshaler implementations (time.Time, uuid.UUID), pointers and
// slices of those, plus *multipart.FileHeader and []*multipart.FileHeader for
// files. Decoding failures wrap a *FieldError.
//
//	type ContactRequest struct {
//		Name       string                `form:"name"`
//		Email      string                `form:"email"`
//		Tags       []string              `form:"tags"`
//		Attachment *multipart.FileHeader `file:"attachment"`
//	}
//
//	bind := binder.Form(binder.WithPrefix("contact"))
//	var req ContactRequest
//	if err := bind(r, &req); err != nil {
//		return err
//	}
func Form(opts ...Option) Func {
	cfg := newConfig(opts)
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		var (
			values map[string][]string
			files  map[string][]*multipart.FileHeader
		)

		switch mediaType := MediaType(r); {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case mediaType == "multipart/form-data":
			_, params, err := mime.ParseMediaType(contentType)
			if err != nil {
				return fmt.Errorf("%w: malformed content type", ErrFailedToParseForm)
			}
			if !validateBoundary(params["boundary"]) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(cfg.maxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
				files = r.MultipartForm.File
			}

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return Values(v, unprefix(cfg.prefix, values), unprefix(cfg.prefix, files))
	}
}

// Values binds already parsed values and files into v.
func Values(v any, values map[string][]string, files map[string][]*multipart.FileHeader) error {
	rv, err := structValue(v)
	if err != nil {
		return err
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		if fileTag := sf.Tag.Get("file"); fileTag != "" {
			if fileTag == "-" {
				continue
			}
			if headers := files[fileTag]; len(headers) > 0 {
				if err := setFileField(field, sf.Type, headers); err != nil {
					return fmt.Errorf("%w: %w", ErrFailedToParseForm, &FieldError{Field: fileTag, Err: err})
				}
			}
			continue
		}

		name, skip := FieldName(sf, "form")
		if skip {
			continue
		}
		if fieldValues := values[name]; len(fieldValues) > 0 {
			if err := decodeField(field, name, fieldValues); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
		}
	}

	return nil
}

// validateBoundary checks the multipart boundary against RFC 2046: 1 to 70
// characters from the bchars set, not ending with a space.
func validateBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 70 || strings.HasSuffix(boundary, " ") {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}

// setFileField sets file values to struct fields.
func setFileField(field reflect.Value, fieldType reflect.Type, fileHeaders []*multipart.FileHeader) error {
	for _, fh := range fileHeaders {
		fh.Filename = sanitizeFilename(fh.Filename)
	}

	headerType := reflect.TypeOf((*multipart.FileHeader)(nil))
	switch {
	case fieldType == headerType:
		field.Set(reflect.ValueOf(fileHeaders[0]))
		return nil
	case fieldType.Kind() == reflect.Slice && fieldType.Elem() == headerType:
		slice := reflect.MakeSlice(fieldType, len(fileHeaders), len(fileHeaders))
		for i, fh := range fileHeaders {
			slice.Index(i).Set(reflect.ValueOf(fh))
		}
		field.Set(slice)
		return nil
	}

	return fmt.Errorf("unsupported type for file field: %v (expected *multipart.FileHeader or []*multipart.FileHeader)", fieldType)
}

// sanitizeFilename strips directory components and null bytes from an uploaded file name.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
