package contact

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formhandler/form"
	"github.com/dmitrymomot/formhandler/handler"
)

func esc(s string) string { return templ.EscapeString(s) }

// Page renders the contact form.
func Page(view *form.View) templ.Component {
	return layout("Contact us", FormFragment(view))
}

// FormFragment renders the form element alone, used for DataStar patches.
func FormFragment(view *form.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		fmt.Fprintf(&b, `<form id="contact-form" method="%s" action="%s" novalidate>`, esc(strings.ToLower(view.Method)), esc(view.Action))
		for _, msg := range view.Errors {
			fmt.Fprintf(&b, `<p class="form-error">%s</p>`, esc(msg))
		}
		for _, f := range view.Fields {
			writeField(&b, f)
		}
		b.WriteString(`<button type="submit">Send</button></form>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeField(b *strings.Builder, f form.FieldView) {
	class := "field"
	if len(f.Errors) > 0 {
		class += " field-invalid"
	}
	required := ""
	if f.Required {
		required = " required"
	}

	fmt.Fprintf(b, `<div class="%s"><label for="%s">%s</label>`, class, esc(f.ID), esc(f.Label))
	switch f.Name {
	case "topic":
		fmt.Fprintf(b, `<select id="%s" name="%s">`, esc(f.ID), esc(f.FullName))
		for _, t := range Topics {
			selected := ""
			if t == f.Value {
				selected = " selected"
			}
			fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, esc(t), selected, esc(t))
		}
		b.WriteString(`</select>`)
	case "message":
		fmt.Fprintf(b, `<textarea id="%s" name="%s" rows="6"%s>%s</textarea>`, esc(f.ID), esc(f.FullName), required, esc(f.Value))
	default:
		kind := "text"
		if f.Name == "email" {
			kind = "email"
		}
		fmt.Fprintf(b, `<input type="%s" id="%s" name="%s" value="%s"%s>`, kind, esc(f.ID), esc(f.FullName), esc(f.Value), required)
	}
	for _, msg := range f.Errors {
		fmt.Fprintf(b, `<p class="field-error">%s</p>`, esc(msg))
	}
	b.WriteString(`</div>`)
}

// ThanksPage confirms a sent message.
func ThanksPage() templ.Component {
	return layout("Thank you", templ.Raw(`<p>Your message has been sent. We will get back to you soon.</p>`))
}

// NotificationEmail is the body of the mail sent to the support inbox.
func NotificationEmail(msg Message) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1>New contact message</h1><p><strong>From:</strong> %s &lt;%s&gt;</p><p><strong>Topic:</strong> %s</p><p><strong>Subject:</strong> %s</p><pre>%s</pre>`,
			esc(msg.Name), esc(msg.Email), esc(msg.Topic), esc(msg.Subject), esc(msg.Message),
		)
		return err
	})
}

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title></head><body><main><h1>%s</h1>`, esc(title), esc(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// ErrorPage renders failures reported by the error handler.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return layout("Something went wrong", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p>%s</p><p class="muted">Status %d. Request %s.</p>`, esc(p.Error), p.StatusCode, esc(p.RequestID))
		return err
	}))
}
