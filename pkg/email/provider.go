package email

import (
	"fmt"
	"strings"
)

// NewSender builds the sender selected by cfg.Provider.
func NewSender(cfg Config) (EmailSender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderPostmark:
		return NewPostmarkClient(cfg)
	case ProviderResend:
		return NewResendClient(cfg)
	case ProviderDev, "":
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
