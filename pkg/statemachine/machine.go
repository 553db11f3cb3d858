package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Guard vetoes a transition by returning false. data is the value passed to Fire.
type Guard func(ctx context.Context, data any) bool

// Observer is called after every state change, outside the machine lock.
type Observer[S, E comparable] func(ctx context.Context, from, to S, event E)

type transition[S comparable] struct {
	to     S
	guards []Guard
}

type key[S, E comparable] struct {
	from  S
	event E
}

// Machine is a finite-state machine over states S and events E. It is safe for
// concurrent use.
type Machine[S, E comparable] struct {
	initial S

	mu          sync.RWMutex
	current     S
	transitions map[key[S, E]][]transition[S]
	wildcard    map[E][]transition[S]
	observers   []Observer[S, E]
}

// Option configures a Machine.
type Option[S, E comparable] func(*Machine[S, E])

// New returns a machine in state initial.
func New[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[key[S, E]][]transition[S]),
		wildcard:    make(map[E][]transition[S]),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithTransition declares from -> to on event. Several transitions may share a
// source and event; the first whose guards all pass is taken.
func WithTransition[S, E comparable](from, to S, event E, guards ...Guard) Option[S, E] {
	return func(m *Machine[S, E]) {
		k := key[S, E]{from: from, event: event}
		m.transitions[k] = append(m.transitions[k], transition[S]{to: to, guards: guards})
	}
}

// FromAny declares a transition to to on event from every state. Transitions
// declared for a concrete state are tried first.
func FromAny[S, E comparable](to S, event E, guards ...Guard) Option[S, E] {
	return func(m *Machine[S, E]) {
		m.wildcard[event] = append(m.wildcard[event], transition[S]{to: to, guards: guards})
	}
}

// WithObserver registers o. Nil is ignored.
func WithObserver[S, E comparable](o Observer[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire moves the machine along event. On failure the state is unchanged and
// the error is a *TransitionError.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.Lock()
	from := m.current
	to, err := m.resolve(ctx, event, data)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = to
	observers := m.observers
	m.mu.Unlock()

	for _, o := range observers {
		o(ctx, from, to, event)
	}
	return nil
}

// CanFire reports whether Fire would succeed now.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.resolve(ctx, event, data)
	return err == nil
}

// Reset returns to the initial state without notifying observers.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	m.current = m.initial
	m.mu.Unlock()
}

// resolve picks the target state. Caller holds the lock.
func (m *Machine[S, E]) resolve(ctx context.Context, event E, data any) (S, error) {
	candidates := m.transitions[key[S, E]{from: m.current, event: event}]
	if len(candidates) == 0 {
		candidates = m.wildcard[event]
	}
	if len(candidates) == 0 {
		var zero S
		return zero, &TransitionError{From: fmt.Sprint(m.current), Event: fmt.Sprint(event)}
	}

	for _, t := range candidates {
		if passes(ctx, t.guards, data) {
			return t.to, nil
		}
	}
	var zero S
	return zero, &TransitionError{From: fmt.Sprint(m.current), Event: fmt.Sprint(event), Rejected: true}
}

func passes(ctx context.Context, guards []Guard, data any) bool {
	for _, g := range guards {
		if g != nil && !g(ctx, data) {
			return false
		}
	}
	return true
}
