package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/formhandler/pkg/validator"
)

// postmarkAPI is the part of *postmark.Client used here.
type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// Postmark sends through the Postmark transactional API.
type Postmark struct {
	client  postmarkAPI
	from    string
	replyTo string
}

// NewPostmark validates cfg and creates the sender.
func NewPostmark(cfg Config) (*Postmark, error) {
	if cfg.PostmarkServerToken == "" || cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: both Postmark tokens are required", ErrInvalidConfig)
	}
	return newPostmark(postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken), cfg)
}

func newPostmark(client postmarkAPI, cfg Config) (*Postmark, error) {
	err := validator.Apply(
		validator.Email("sender_email", cfg.SenderEmail),
		validator.Email("support_email", cfg.SupportEmail),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return &Postmark{client: client, from: cfg.SenderEmail, replyTo: cfg.SupportEmail}, nil
}

// Send delivers msg. Replies go to the support address unless msg sets ReplyTo.
func (p *Postmark) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	replyTo := p.replyTo
	if msg.ReplyTo != "" {
		replyTo = msg.ReplyTo
	}

	resp, err := p.client.SendEmail(ctx, postmark.Email{
		From:       p.from,
		To:         msg.To,
		ReplyTo:    replyTo,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTMLBody,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("%w: postmark error %d: %s", ErrSendFailed, resp.ErrorCode, resp.Message)
	}
	return nil
}
