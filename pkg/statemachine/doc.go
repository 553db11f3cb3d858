// Package statemachine implements a small generic finite-state machine used to
// track the lifecycle of long-lived objects such as form handlers.
//
// States and events are any comparable types, usually string-based constants:
//
//	type status string
//	type action string
//
//	m := statemachine.New[status, action]("draft",
//		statemachine.WithTransition[status, action]("draft", "published", "publish", isComplete),
//		statemachine.FromAny[status, action]("draft", "restart"),
//	)
//	if err := m.Fire(ctx, "publish", doc); errors.Is(err, statemachine.ErrRejected) {
//		// a guard vetoed the transition
//	}
//
// Transitions declared for the current state are tried before FromAny ones.
// Among candidates the first whose guards all pass wins, so declaration order
// is priority. A failed Fire returns a *TransitionError matching
// ErrNoTransition or ErrRejected and leaves the state unchanged.
package statemachine
