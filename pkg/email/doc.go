// Package email provides a provider-agnostic interface for sending transactional
// emails, with Postmark and Resend backends and a development sender that
// writes messages to disk.
//
// # Architecture
//
// Everything is built around the EmailSender interface:
//   - NewPostmarkClient sends through Postmark with open and link tracking
//   - NewResendClient sends through Resend
//   - NewDevSender saves an .html and a .json file per message
//
// NewSender picks one of them from Config.Provider. All implementations
// validate SendEmailParams before doing any work, so callers get
// ErrInvalidParams without a network round trip.
//
// # Usage
//
//	sender, err := email.NewSender(email.Config{
//		Provider:            email.ProviderPostmark,
//		SenderEmail:         "noreply@example.com",
//		PostmarkServerToken: "server-token",
//	})
//	if err != nil {
//		return err
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Welcome!",
//		BodyHTML: html,
//		ReplyTo:  "visitor@example.com", // optional
//		Tag:      "welcome",             // optional, for analytics
//	})
//
// HTML bodies are usually produced with the templates subpackage:
//
//	html, err := templates.Render(ctx, templates.Layout("Welcome", siteURL, body))
//
// # Error Handling
//
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidParams: email parameters validation failed
//   - ErrFailedToSendEmail: the provider rejected the message or was unreachable
//   - ErrUnknownProvider: Config.Provider names no known backend
package email
