package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Constructor builds a new value each time an identifier is resolved.
type Constructor func() (any, error)

// Registry is a name-keyed set of constructors. Safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// Register adds a constructor under id. Duplicate ids are rejected.
func (r *Registry) Register(id string, c Constructor) error {
	if id == "" {
		return ErrEmptyID
	}
	if c == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConstructor, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, id)
	}
	r.constructors[id] = c
	return nil
}

// MustRegister panics on registration failure. Intended for startup wiring.
func (r *Registry) MustRegister(id string, c Constructor) {
	if err := r.Register(id, c); err != nil {
		panic(err)
	}
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.constructors[id]
	return ok
}

// Get runs the constructor registered under id.
func (r *Registry) Get(id string) (any, error) {
	r.mu.RLock()
	c, ok := r.constructors[id]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	v, err := c()
	if err != nil {
		return nil, &ResolutionError{ID: id, Err: err}
	}
	if v == nil {
		return nil, &ResolutionError{ID: id, Err: ErrNilValue}
	}
	return v, nil
}

// List returns the registered identifiers in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.constructors))
	for id := range r.constructors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve gets id from r and asserts the result to T.
func Resolve[T any](r *Registry, id string) (T, error) {
	var zero T

	v, err := r.Get(id)
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, &TypeMismatchError{
			ID:       id,
			Expected: fmt.Sprintf("%T", (*T)(nil))[1:],
			Got:      fmt.Sprintf("%T", v),
		}
	}
	return typed, nil
}
