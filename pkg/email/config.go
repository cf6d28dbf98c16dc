package email

// Provider names accepted by NewSender.
const (
	ProviderPostmark = "postmark"
	ProviderResend   = "resend"
	ProviderDev      = "dev"
)

// Config holds email service configuration.
// Only the credentials of the selected provider need to be set, so a
// development setup runs with no tokens at all.
type Config struct {
	Provider             string `env:"EMAIL_PROVIDER" envDefault:"dev"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"noreply@worldcup26hostcities.com"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	ResendAPIKey         string `env:"RESEND_API_KEY"`
	DevDir               string `env:"DEV_EMAIL_DIR" envDefault:"./tmp/emails"`
}
