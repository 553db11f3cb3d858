// Package sanitizer cleans user input before it is validated or stored.
//
// String helpers (Trim, NormalizeWhitespace, StripHTML, NormalizeEmail, ...)
// are plain func(string) string values, so they compose with Apply and
// Compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeWhitespace, sanitizer.ToLower)
//	clean("  Mixed CASE   Input\n") // "mixed case input"
//
// HTML handling is delegated to bluemonday: StripHTML uses the strict policy
// and removes all markup, SafeHTML keeps the user generated content subset.
//
// Struct applies named rules declared in `sanitize` struct tags. The built-in
// names are trim, lower, upper, title, whitespace, single, control,
// strip_html, safe_html and email; Register adds custom ones. Strings applies
// a single function to every string field regardless of tags.
package sanitizer
