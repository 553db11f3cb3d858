package event

import (
	"context"
	"fmt"
	"sync"
)

// Listener handles a dispatched payload. Returning an error stops propagation.
type Listener[E any] func(ctx context.Context, e E) error

// Dispatcher delivers payloads of type E to listeners registered by event name.
type Dispatcher[E any] struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[string][]entry[E]
}

type entry[E any] struct {
	id uint64
	fn Listener[E]
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher[E any]() *Dispatcher[E] {
	return &Dispatcher[E]{
		listeners: make(map[string][]entry[E]),
	}
}

// AddListener registers l for the named event and returns a function removing it.
// Panics on an empty name or a nil listener since both are wiring mistakes.
func (d *Dispatcher[E]) AddListener(name string, l Listener[E]) (remove func()) {
	if name == "" {
		panic(ErrEmptyEventName)
	}
	if l == nil {
		panic(ErrNilListener)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	d.listeners[name] = append(d.listeners[name], entry[E]{id: id, fn: l})

	var once sync.Once
	return func() {
		once.Do(func() { d.removeListener(name, id) })
	}
}

func (d *Dispatcher[E]) removeListener(name string, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entries := d.listeners[name]
	for i, e := range entries {
		if e.id == id {
			d.listeners[name] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(d.listeners[name]) == 0 {
		delete(d.listeners, name)
	}
}

// HasListeners reports whether at least one listener is registered for name.
func (d *Dispatcher[E]) HasListeners(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[name]) > 0
}

// Listeners returns the listeners registered for name in invocation order.
func (d *Dispatcher[E]) Listeners(name string) []Listener[E] {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entries := d.listeners[name]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Listener[E], len(entries))
	for i, e := range entries {
		out[i] = e.fn
	}
	return out
}

// Dispatch invokes every listener registered for name with e, in registration order.
// Events without listeners are a no-op.
func (d *Dispatcher[E]) Dispatch(ctx context.Context, e E, name string) error {
	for _, l := range d.Listeners(name) {
		if err := l(ctx, e); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrListenerFailed, name, err)
		}
	}
	return nil
}
