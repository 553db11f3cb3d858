package contact

import (
	"log/slog"

	"github.com/dmitrymomot/formhandler"
	"github.com/dmitrymomot/formhandler/form"
	"github.com/dmitrymomot/formhandler/pkg/registry"
)

// Register adds the contact handler to handlers. Every resolution yields a
// fresh FormHandler sharing forms, dispatcher and store.
func Register(handlers *registry.Registry, forms *form.Factory, dispatcher *formhandler.Dispatcher, store Store, log *slog.Logger) error {
	return handlers.Register(HandlerID, formhandler.Provide(forms, dispatcher, NewProcessor(store, log), formhandler.WithLogger(log)))
}
