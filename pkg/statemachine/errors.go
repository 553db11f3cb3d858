package statemachine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTransition is matched by TransitionError when nothing is declared
	// for the current state and event.
	ErrNoTransition = errors.New("statemachine: no transition")
	// ErrRejected is matched by TransitionError when guards vetoed every candidate.
	ErrRejected = errors.New("statemachine: transition rejected by guards")
)

// TransitionError reports a Fire call that left the state unchanged.
type TransitionError struct {
	From     string
	Event    string
	Rejected bool
}

func (e *TransitionError) Error() string {
	if e.Rejected {
		return fmt.Sprintf("statemachine: %q on %q rejected by guards", e.Event, e.From)
	}
	return fmt.Sprintf("statemachine: no transition for %q from %q", e.Event, e.From)
}

// Is matches ErrNoTransition or ErrRejected.
func (e *TransitionError) Is(target error) bool {
	if e.Rejected {
		return target == ErrRejected
	}
	return target == ErrNoTransition
}
