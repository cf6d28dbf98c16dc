package validator

import "regexp"

// emailPart excludes @ and every Unicode space, including the no-break and
// zero-width no-break spaces that RE2's ASCII \s misses.
const emailPart = `[^\s\p{Z}\x{000B}\x{FEFF}@]+`

// looseEmailRegex accepts anything shaped like local@domain.tld with no whitespace
// and exactly one @ on each side of the split.
var looseEmailRegex = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// LooseEmail validates the rough shape of an email address.
func LooseEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return looseEmailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Key:     "validation.email",
		},
	}
}

// Custom wraps an arbitrary predicate as a Rule.
func Custom(field, message string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:   field,
			Message: message,
			Key:     "validation.custom",
		},
	}
}
