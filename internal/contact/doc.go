// Package contact is the contact form application: the form type, the
// processor that stores messages, a success listener that notifies the
// support inbox, and the HTTP routes.
//
// Wiring:
//
//	forms, err := form.NewFactory([]form.Type{contact.Type})
//	if err != nil {
//	    return err
//	}
//	if err := contact.Register(handlers, forms, dispatcher, store, log); err != nil {
//	    return err
//	}
//	dispatcher.AddListener(formhandler.EventSuccess, contact.NotifyListener(sender, inbox, log))
//	contact.Routes(router, formhandler.NewFactory(handlers, forms), errorHandler, limiter)
//
// Messages are stored in PostgreSQL through PGStore when a database is
// configured, or kept in memory by MemoryStore. Migrations exposes the goose
// migrations for the contact_messages table, and Locales the translations of
// the validation messages for i18n.Load.
package contact
