package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the NFC form of s with control characters removed.
// Line breaks and tabs are kept; they are meaningful in contact messages.
func Normalize(s string) string {
	return StripControl(Compose(s))
}

// Compose returns the NFC form of s.
func Compose(s string) string {
	if s == "" {
		return s
	}
	return norm.NFC.String(s)
}

// StripControl removes control characters other than line breaks and tabs.
func StripControl(s string) string {
	if s == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// Length returns the number of characters (code points) in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
