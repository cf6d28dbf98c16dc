// Package sanitizer cleans user-supplied text before it is embedded into
// outbound email HTML.
//
// Every value that came from a request body must pass through EscapeHTML
// before it is interpolated into markup. Multi-line values additionally go
// through MultilineHTML, which escapes first and then turns line breaks
// into <br> elements. Values that end up in email headers (subjects) go
// through SingleLine so a CR/LF in user input cannot start a new header.
//
// Normalize applies Unicode NFC normalization so that length limits are
// checked against the canonical form of the input rather than whatever
// decomposition the browser happened to send.
//
// # Usage
//
//	name := sanitizer.Normalize(req.Name)
//	html := "<p><strong>Name:</strong> " + sanitizer.EscapeHTML(name) + "</p>"
//	body := sanitizer.MultilineHTML(req.Message)
//	subject := sanitizer.SingleLine("Contact form: " + name)
//
// All helpers are pure and safe for concurrent use.
package sanitizer
