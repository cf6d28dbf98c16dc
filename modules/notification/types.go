package notification

import (
	"bytes"
	"encoding/json"
	"time"
)

// Request types accepted on the endpoint.
const (
	TypePredictorSignup = "predictor-signup"
	TypeContactForm     = "contact-form"
)

// typeUnknown labels requests whose type was never established.
const typeUnknown = "unknown"

// Email kinds, used as the metrics label and the provider tag suffix.
const (
	kindAdmin        = "admin"
	kindConfirmation = "confirmation"
	kindContact      = "contact"
)

// Request is the body of POST /api/send-email.
type Request struct {
	Type string
	Data json.RawMessage
}

// UnmarshalJSON accepts any JSON value for "type". A non-string type is
// kept empty so it is answered as an invalid request type rather than a
// parse failure.
func (r *Request) UnmarshalJSON(b []byte) error {
	var raw struct {
		Type json.RawMessage `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.Type = ""
	if len(raw.Type) > 0 && raw.Type[0] == '"' {
		if err := json.Unmarshal(raw.Type, &r.Type); err != nil {
			return err
		}
	}
	r.Data = raw.Data
	return nil
}

// PredictionSubmission is a predictor signup. UniqueID is the upsert key.
type PredictionSubmission struct {
	Name        string
	Email       string
	Country     string
	UniqueID    string
	Predictions map[string]any
	CreatedAt   time.Time
}

// ContactMessage is a contact form submission. It is never persisted.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// fields is the decoded "data" object. Anything that is not a JSON object
// decodes to an empty set, so every field reads as missing.
type fields map[string]json.RawMessage

func decodeFields(data json.RawMessage) fields {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil || f == nil {
		return fields{}
	}
	return f
}

// text returns the named field when it is a JSON string.
func (f fields) text(name string) (string, bool) {
	raw, ok := f[name]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// object returns the named field as a map. A missing or null field is an
// empty map; any other non-object value is rejected.
func (f fields) object(name string) (map[string]any, bool) {
	raw, ok := f[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return map[string]any{}, true
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}
