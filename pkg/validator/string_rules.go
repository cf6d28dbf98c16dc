package validator

import (
	"fmt"
	"unicode/utf8"
)

// IsString fails when the raw value was present but not a JSON string, or absent.
// Callers pass the ok flag of their type assertion.
func IsString(field string, ok bool) Rule {
	return Rule{
		Check: func() bool {
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a string",
			Key:     "validation.string",
		},
	}
}

// LenBetween checks that value has between min and max characters, inclusive.
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters long", min, max),
			Key:     "validation.length_between",
		},
	}
}
