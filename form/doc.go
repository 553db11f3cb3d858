// Package form is the form engine used by formhandler: it describes form types,
// binds HTTP requests to their data structs, sanitizes and validates the data,
// and builds render models for templates.
//
// # Types
//
// A form type names a data struct. Define builds one from a Go type:
//
//	type ContactData struct {
//		Name    string `form:"name" validate:"required" sanitize:"strip_html"`
//		Email   string `form:"email" validate:"required,email" sanitize:"email"`
//		Message string `form:"message" label:"Your message" validate:"required,max=2000"`
//	}
//
//	var Contact = form.Define[ContactData]("contact",
//		form.WithHandler[ContactData]("contact"),
//		form.WithRules(func(d *ContactData) []validator.Rule {
//			return []validator.Rule{validator.MinLen("name", d.Name, 3)}
//		}),
//	)
//
// Types are registered on a Factory, which creates request scoped Form
// instances:
//
//	factory, err := form.NewFactory([]form.Type{Contact})
//	f, err := factory.Create("contact", nil, form.Options{form.OptionAction: "/contact"})
//
// # Submission
//
// Form.HandleRequest treats a request as a submission when its method matches
// the form method (POST unless OptionMethod says otherwise) and the request
// carries at least one of the form's fields: in the query string for GET forms,
// in the body otherwise. A POST addressed to another form on the same endpoint
// leaves this one unsubmitted.
// Values are read from urlencoded or multipart bodies, JSON bodies, or the
// query string. Keys may be plain ("email") or scoped by the form name
// ("contact[email]"); scoped keys win.
//
// After binding, string fields are trimmed (unless OptionTrim is false), the
// `sanitize` tag rules run, and validation runs in two passes: struct tags via
// go-playground/validator, then the rules returned by a RuleValidator type.
// Unreadable submissions are reported as form level errors, so a malformed
// request renders the form again like any other invalid submission.
//
// # Messages
//
// Error messages are English by default. WithTranslator looks each one up by
// key ("validation.required", "validation.min_length", "form.invalid_value")
// in the language that i18n.Middleware stored in the request context.
//
// # Views
//
// CreateView returns a View with one FieldView per bindable field, carrying the
// input name, id, label, current value and error messages. Labels come from the
// `label` tag or are derived from the field name.
package form
