package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	dotRegex        = regexp.MustCompile(`\.{2,}`)
	stripPolicy     = bluemonday.StrictPolicy()
	ugcPolicy       = bluemonday.UGCPolicy()
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToTitle capitalises the first letter of every word.
func ToTitle(s string) string {
	return cases.Title(language.Und).String(s)
}

// MaxLength truncates a string to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// NormalizeWhitespace collapses runs of whitespace into a single space and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters except newlines and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine replaces line breaks with spaces and normalizes whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return NormalizeWhitespace(s)
}

// StripHTML removes every HTML element, keeping text content, and unescapes
// entities so "Tom &amp; Jerry" is stored as typed. The result is plain text and
// must still be escaped when rendered.
func StripHTML(s string) string {
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// SafeHTML keeps formatting markup typical for user generated content and
// drops scripts, styles and event handler attributes.
func SafeHTML(s string) string {
	return ugcPolicy.Sanitize(s)
}

// NormalizeEmail trims and lowercases an address and collapses repeated dots in the local part.
// Values that are not of the form local@domain are only trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}
