package notification

import (
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/hostcities/notify/pkg/email/templates"
	"github.com/hostcities/notify/pkg/sanitizer"
)

const confirmationSubject = "Your World Cup 2026 predictions are in"

func adminSignupSubject(sub PredictionSubmission) string {
	return sanitizer.SingleLine("New predictor signup: " + sub.Name + " (" + sub.Country + ")")
}

func contactSubject(msg ContactMessage) string {
	return sanitizer.SingleLine("Contact form: " + msg.Name)
}

// entryLink is the deep link to a predictor entry.
func entryLink(siteURL, uniqueID string) string {
	return strings.TrimRight(siteURL, "/") + "/predictor?entry=" + url.QueryEscape(uniqueID)
}

// detailRow renders "<p><strong>label:</strong> value</p>" with value escaped.
func detailRow(label, value string) string {
	return "<p><strong>" + label + ":</strong> " + sanitizer.EscapeHTML(value) + "</p>"
}

func adminSignupEmail(siteURL string, sub PredictionSubmission) templ.Component {
	body := "<h2>New predictor signup</h2>" +
		detailRow("Name", sub.Name) +
		detailRow("Email", sub.Email) +
		detailRow("Country", sub.Country) +
		detailRow("Entry ID", sub.UniqueID)

	return templates.Layout("New predictor signup", siteURL, templ.Raw(body))
}

func confirmationEmail(siteURL string, sub PredictionSubmission) templ.Component {
	body := "<h2>Thanks for playing, " + sanitizer.EscapeHTML(sub.Name) + "!</h2>" +
		"<p>Your World Cup 2026 predictions have been saved. " +
		"You can come back to your entry at any time to check how you are doing.</p>" +
		detailRow("Entry ID", sub.UniqueID)

	return templates.Layout(confirmationSubject, siteURL, templates.Join(
		templ.Raw(body),
		templates.Button("View your entry", entryLink(siteURL, sub.UniqueID)),
	))
}

func contactEmail(siteURL string, msg ContactMessage) templ.Component {
	body := "<h2>New contact form message</h2>" +
		detailRow("Name", msg.Name) +
		detailRow("Email", msg.Email) +
		"<p><strong>Message:</strong></p><p>" + sanitizer.MultilineHTML(msg.Message) + "</p>"

	return templates.Layout("New contact form message", siteURL, templ.Raw(body))
}
