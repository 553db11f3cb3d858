package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formhandler/pkg/validator"
)

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outgoing email.
type Message struct {
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	Tag      string
}

// Validate checks the recipient, the optional reply-to, the subject and the body.
func (m Message) Validate() error {
	rules := []validator.Rule{
		validator.Required("to", m.To),
		validator.Required("subject", m.Subject),
		validator.Required("html_body", m.HTMLBody),
	}
	if m.To != "" {
		rules = append(rules, validator.Email("to", m.To))
	}
	rules = append(rules, validator.When(m.ReplyTo != "", validator.Email("reply_to", m.ReplyTo))...)

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidMessage, err)
	}
	return nil
}

// New returns a Postmark sender when tokens are configured and a DevSender otherwise.
func New(cfg Config) (Sender, error) {
	if cfg.UsePostmark() {
		return NewPostmark(cfg)
	}
	return NewDevSender(cfg.DevOutputDir), nil
}

// RenderHTML renders a templ component into a message body.
func RenderHTML(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", fmt.Errorf("email: render body: %w", err)
	}
	return sb.String(), nil
}
