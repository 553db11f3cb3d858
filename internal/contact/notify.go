package contact

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formhandler"
	"github.com/dmitrymomot/formhandler/pkg/email"
	"github.com/dmitrymomot/formhandler/pkg/logger"
)

// NotifyListener mails every processed contact message to inbox. Delivery
// failures are logged: the message is already stored when the listener runs.
func NotifyListener(sender email.Sender, inbox string, log *slog.Logger) formhandler.Listener {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("contact.notify"))

	return func(ctx context.Context, e *formhandler.Event) error {
		msg, ok := e.Data.(*Message)
		if !ok {
			return nil
		}

		body, err := email.RenderHTML(ctx, NotificationEmail(*msg))
		if err != nil {
			log.ErrorContext(ctx, "failed to render notification", logger.Error(err))
			return nil
		}

		subject := "New contact message"
		if msg.Subject != "" {
			subject += ": " + msg.Subject
		}
		err = sender.Send(ctx, email.Message{
			To:       inbox,
			ReplyTo:  msg.Email,
			Subject:  subject,
			HTMLBody: body,
			Tag:      "contact",
		})
		if err != nil {
			log.ErrorContext(ctx, "failed to send notification", logger.Error(err), logger.Event(formhandler.EventSuccess))
		}
		return nil
	}
}
