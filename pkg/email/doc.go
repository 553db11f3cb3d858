// Package email sends transactional mail through Postmark, or writes it to
// disk during development.
//
// New picks the implementation from Config: with both Postmark tokens set it
// returns a Postmark sender, otherwise a DevSender writing each message as an
// .html body plus a .json envelope into DevOutputDir.
//
//	sender, err := email.New(config.MustLoad[email.Config]())
//	body, err := email.RenderHTML(ctx, views.ContactNotification(msg))
//	err = sender.Send(ctx, email.Message{
//		To:       cfg.SupportEmail,
//		ReplyTo:  msg.Email,
//		Subject:  "New contact message",
//		HTMLBody: body,
//		Tag:      "contact",
//	})
//
// Messages are validated before sending; invalid ones fail with
// ErrInvalidMessage and are never handed to Postmark.
package email
