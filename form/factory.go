package form

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formhandler/pkg/binder"
)

// Factory keeps the registered form types and builds form instances from them.
// It is safe for concurrent use.
type Factory struct {
	mu         sync.RWMutex
	types      map[string]Type
	validate   *playground.Validate
	translator Translator
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithValidator replaces the struct tag validator, e.g. to add custom tags.
// The form tag name function is registered on it.
func WithValidator(v *playground.Validate) FactoryOption {
	return func(f *Factory) {
		if v != nil {
			f.validate = v
		}
	}
}

// NewFactory creates a factory with the given form types registered.
func NewFactory(types []Type, opts ...FactoryOption) (*Factory, error) {
	f := &Factory{
		types:    make(map[string]Type),
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(f)
	}

	// Report field errors under the names used in requests and views.
	f.validate.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, skip := binder.FieldName(sf, "form")
		if skip {
			return ""
		}
		return name
	})

	for _, t := range types {
		if err := f.Register(t); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Register adds a form type. Names must be unique and the data must be a struct pointer.
func (f *Factory) Register(t Type) error {
	if t == nil || t.Name() == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidType)
	}
	if rv := reflect.ValueOf(t.NewData(nil)); rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s: NewData must return a pointer to struct", ErrInvalidType, t.Name())
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.types[t.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateType, t.Name())
	}
	f.types[t.Name()] = t
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (f *Factory) MustRegister(types ...Type) {
	for _, t := range types {
		if err := f.Register(t); err != nil {
			panic(err)
		}
	}
}

// Has reports whether a type is registered under name.
func (f *Factory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.types[name]
	return ok
}

// Type returns the type registered under name.
func (f *Factory) Type(name string) (Type, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	t, ok := f.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, name)
	}
	return t, nil
}

// Names returns the registered type names in sorted order.
func (f *Factory) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.types))
	for name := range f.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds a form of the named type. A nil data starts from Type.NewData;
// otherwise data must be a value or pointer of the type's data struct.
func (f *Factory) Create(name string, data any, opts Options) (*Form, error) {
	t, err := f.Type(name)
	if err != nil {
		return nil, err
	}

	fresh := t.NewData(opts)
	if data != nil {
		if data, err = coerceData(fresh, data); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	} else {
		data = fresh
	}

	formName := t.Name()
	if n, ok := opts.Name(); ok {
		formName = n
	}

	return &Form{
		typ:        t,
		name:       formName,
		data:       data,
		opts:       opts,
		validate:   f.validate,
		translator: f.translator,
	}, nil
}

// coerceData returns data as a pointer of the same type as fresh.
func coerceData(fresh, data any) (any, error) {
	want := reflect.TypeOf(fresh)
	rv := reflect.ValueOf(data)

	switch {
	case rv.Type() == want:
		if rv.IsNil() {
			return fresh, nil
		}
		return data, nil
	case rv.Type() == want.Elem():
		ptr := reflect.New(want.Elem())
		ptr.Elem().Set(rv)
		return ptr.Interface(), nil
	}
	return nil, fmt.Errorf("%w: got %T, expected %s", ErrInvalidData, data, strings.TrimPrefix(want.String(), "*"))
}
