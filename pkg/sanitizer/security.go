package sanitizer

import (
	"html"
	"strings"
)

// lineBreaks matches every line terminator a browser textarea may submit.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// EscapeHTML escapes <, >, &, ' and " so the value renders as text.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// MultilineHTML escapes s and converts each line break into a <br> element.
// Escaping happens first, so the only markup in the result is the inserted breaks.
func MultilineHTML(s string) string {
	escaped := EscapeHTML(lineBreaks.Replace(s))
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

// SingleLine collapses line breaks and tabs into single spaces.
// Use it for anything that ends up in a mail header.
func SingleLine(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '\t', '\v', '\f':
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
