package formhandler

import (
	"net/http"

	"github.com/dmitrymomot/formhandler/form"
	"github.com/dmitrymomot/formhandler/pkg/event"
)

// Lifecycle event names.
const (
	// EventProcess is dispatched before processing a valid submission.
	// Listeners may replace Event.Data; the handler processes whatever it holds afterwards.
	EventProcess = "form.process"
	// EventSuccess is dispatched after the processor succeeded.
	EventSuccess = "form.success"
	// EventFail is dispatched when a submitted form is invalid.
	EventFail = "form.fail"
)

// Event is the payload passed to lifecycle listeners. One Event is created per Handle call.
type Event struct {
	Request *http.Request
	Form    *form.Form
	// Data starts as the form data pointer.
	Data any
}

// Dispatcher delivers lifecycle events to listeners in registration order.
type Dispatcher = event.Dispatcher[*Event]

// Listener handles a lifecycle event. A returned error aborts Handle.
type Listener = event.Listener[*Event]

// NewDispatcher returns an empty lifecycle dispatcher.
func NewDispatcher() *Dispatcher {
	return event.NewDispatcher[*Event]()
}
