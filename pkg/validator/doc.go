// Package validator builds declarative field checks for request payloads.
//
// A Rule pairs a lazy Check function with the ValidationError to report when
// the check fails. First evaluates rules in order and stops at the first
// failure, which is what the notification endpoint needs to answer with a
// single "Invalid <field>" message.
//
// # Usage
//
//	err := validator.First(
//	    validator.IsString("name", nameOK),
//	    validator.LenBetween("name", name, 1, 120),
//	    validator.LooseEmail("email", email),
//	)
//	if verr, ok := validator.FirstError(err); ok {
//	    // verr.Field == "name"
//	}
//
// Lengths are counted in characters (Unicode code points), not bytes.
//
// LooseEmail is a deliberately loose local@domain.tld shape check. It is a
// sanity filter for form input, not an RFC 5322 verifier.
package validator
