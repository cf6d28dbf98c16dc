package notification

import (
	"encoding/json"

	"github.com/hostcities/notify/pkg/sanitizer"
	"github.com/hostcities/notify/pkg/validator"
)

// Field bounds, in characters after NFC composition. Control characters
// count toward the bounds and are stripped afterwards.
const (
	nameMin, nameMax         = 1, 120
	emailMin, emailMax       = 3, 254
	countryMin, countryMax   = 2, 80
	uniqueIDMin, uniqueIDMax = 6, 64
	messageMin, messageMax   = 1, 4000
)

// parseSignup validates a predictor-signup payload. The first failing field
// is reported as an "Invalid <field>" error.
func parseSignup(data json.RawMessage) (PredictionSubmission, error) {
	f := decodeFields(data)

	name, nameOK := f.text("name")
	email, emailOK := f.text("email")
	country, countryOK := f.text("country")
	uniqueID, uniqueIDOK := f.text("uniqueId")
	predictions, predictionsOK := f.object("predictions")

	name, email = sanitizer.Compose(name), sanitizer.Compose(email)
	country, uniqueID = sanitizer.Compose(country), sanitizer.Compose(uniqueID)

	sub := PredictionSubmission{
		Name:        sanitizer.StripControl(name),
		Email:       sanitizer.StripControl(email),
		Country:     sanitizer.StripControl(country),
		UniqueID:    sanitizer.StripControl(uniqueID),
		Predictions: predictions,
	}

	err := validator.First(
		validator.IsString("name", nameOK),
		validator.LenBetween("name", name, nameMin, nameMax),
		validator.IsString("email", emailOK),
		validator.LenBetween("email", email, emailMin, emailMax),
		validator.LooseEmail("email", sub.Email),
		validator.IsString("country", countryOK),
		validator.LenBetween("country", country, countryMin, countryMax),
		validator.IsString("uniqueId", uniqueIDOK),
		validator.LenBetween("uniqueId", uniqueID, uniqueIDMin, uniqueIDMax),
		validator.Custom("predictions", "must be an object", func() bool { return predictionsOK }),
	)
	if verr, ok := validator.FirstError(err); ok {
		return PredictionSubmission{}, invalidField(verr.Field)
	}

	return sub, nil
}

// parseContact validates a contact-form payload.
func parseContact(data json.RawMessage) (ContactMessage, error) {
	f := decodeFields(data)

	name, nameOK := f.text("name")
	email, emailOK := f.text("email")
	message, messageOK := f.text("message")

	name, email, message = sanitizer.Compose(name), sanitizer.Compose(email), sanitizer.Compose(message)

	msg := ContactMessage{
		Name:    sanitizer.StripControl(name),
		Email:   sanitizer.StripControl(email),
		Message: sanitizer.StripControl(message),
	}

	err := validator.First(
		validator.IsString("name", nameOK),
		validator.LenBetween("name", name, nameMin, nameMax),
		validator.IsString("email", emailOK),
		validator.LenBetween("email", email, emailMin, emailMax),
		validator.LooseEmail("email", msg.Email),
		validator.IsString("message", messageOK),
		validator.LenBetween("message", message, messageMin, messageMax),
	)
	if verr, ok := validator.FirstError(err); ok {
		return ContactMessage{}, invalidField(verr.Field)
	}

	return msg, nil
}
