package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formhandler"
	"github.com/dmitrymomot/formhandler/pkg/logger"
)

// NewProcessor stores every valid contact message.
func NewProcessor(store Store, log *slog.Logger) formhandler.Processor {
	if log == nil {
		log = logger.Discard()
	}
	return formhandler.ForForm(FormType, formhandler.Typed(func(ctx context.Context, msg *Message, _ formhandler.Params) error {
		rec, err := store.Save(ctx, *msg)
		if err != nil {
			return fmt.Errorf("contact: save message: %w", err)
		}
		log.InfoContext(ctx, "contact message stored",
			logger.FormType(FormType),
			slog.String("message_id", rec.ID.String()),
		)
		return nil
	}))
}
