package formhandler

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formhandler/form"
	"github.com/dmitrymomot/formhandler/pkg/logger"
	"github.com/dmitrymomot/formhandler/pkg/statemachine"
)

// State is the lifecycle state of a handler.
type State string

const (
	StateEmpty            State = "empty"
	StateBuilt            State = "built"
	StateSubmittedValid   State = "submitted_valid"
	StateSubmittedInvalid State = "submitted_invalid"
	StateUnsubmitted      State = "unsubmitted"
)

type transition string

const (
	transitionBuild  transition = "build"
	transitionAccept transition = "accept"
	transitionReject transition = "reject"
	transitionSkip   transition = "skip"
)

type lifecycle = statemachine.Machine[State, transition]

// newLifecycle builds the handler state machine. A form can be rebuilt from any
// state; evaluation requires a bound form and may repeat.
func newLifecycle(log *slog.Logger) *lifecycle {
	formBound := func(_ context.Context, data any) bool {
		f, ok := data.(*form.Form)
		return ok && f != nil
	}

	return statemachine.New(StateEmpty,
		statemachine.FromAny[State](StateBuilt, transitionBuild, formBound),
		statemachine.FromAny[State](StateSubmittedValid, transitionAccept, formBound),
		statemachine.FromAny[State](StateSubmittedInvalid, transitionReject, formBound),
		statemachine.FromAny[State](StateUnsubmitted, transitionSkip, formBound),
		statemachine.WithObserver(func(ctx context.Context, from, to State, _ transition) {
			log.DebugContext(ctx, "form lifecycle transition",
				slog.String("from", string(from)),
				logger.State(string(to)),
			)
		}),
	)
}
