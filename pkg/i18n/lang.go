package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the parsed Accept-Language header.
const maxAcceptLanguageLength = 4096

// Match negotiates an Accept-Language header against the supported languages.
// Regional variants fall back to their base language ("de-AT" matches "de").
// fallback is returned when nothing matches.
func Match(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence < language.High {
		return fallback
	}
	return strings.ToLower(supported[idx])
}

// FromRequest returns the language of r: the "lang" query parameter when it
// names a supported language, otherwise the negotiated Accept-Language.
func (t *Translator) FromRequest(r *http.Request) string {
	langs := t.Languages()
	if q := strings.ToLower(r.URL.Query().Get("lang")); q != "" {
		for _, l := range langs {
			if l == q {
				return l
			}
		}
	}
	return Match(r.Header.Get("Accept-Language"), langs, t.defaultLang)
}
