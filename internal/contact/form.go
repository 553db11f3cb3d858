package contact

import (
	"github.com/dmitrymomot/formhandler/form"
	"github.com/dmitrymomot/formhandler/pkg/validator"
)

const (
	// FormType is the form type name and field prefix.
	FormType = "contact"
	// HandlerID is the registry id of the contact form handler.
	HandlerID = "contact"
)

// Topics are the accepted values of Message.Topic. The first is the default.
var Topics = []string{"general", "sales", "support"}

// Message is the data bound from the contact form.
type Message struct {
	Name    string `form:"name" validate:"required,max=100" sanitize:"strip_html,whitespace"`
	Email   string `form:"email" validate:"required,email,max=254" sanitize:"email"`
	Topic   string `form:"topic" sanitize:"trim,lower"`
	Subject string `form:"subject" validate:"max=150" sanitize:"strip_html,single"`
	Message string `form:"message" label:"Your message" validate:"required,max=5000" sanitize:"strip_html,control"`
}

// Type is the contact form type. It declares HandlerID as its handler.
var Type = form.Define[Message](FormType,
	form.WithHandler[Message](HandlerID),
	form.WithRules(func(m *Message) []validator.Rule {
		return []validator.Rule{
			validator.MinLen("name", m.Name, 3),
			validator.OneOf("topic", m.Topic, Topics),
		}
	}),
	form.WithDefaults(func(m *Message, opts form.Options) {
		m.Topic = Topics[0]
		if t, ok := opts["topic"].(string); ok {
			m.Topic = t
		}
		if s, ok := opts["subject"].(string); ok {
			m.Subject = s
		}
	}),
)
