// Package i18n loads YAML or JSON translations and negotiates the request
// language.
//
// Translation files hold one tree per language code; keys are looked up with
// dot notation and %{name} placeholders are substituted:
//
//	# de.yaml
//	de:
//	  validation:
//	    required: "Pflichtfeld"
//	    min_length: "mindestens %{param} Zeichen"
//
//	t, err := i18n.Load(locales)
//	if err != nil {
//		return err
//	}
//	r.Use(i18n.Middleware(t))
//
//	msg, ok := t.Lookup(i18n.Locale(ctx), "validation.min_length", map[string]string{"param": "3"})
//
// Language negotiation uses golang.org/x/text/language: the "lang" query
// parameter wins when supported, then Accept-Language, then the default.
package i18n
