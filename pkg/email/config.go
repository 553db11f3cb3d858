package email

// Config is loaded with pkg/config. Without Postmark tokens New falls back to
// writing messages to DevOutputDir.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"noreply@example.com"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"support@example.com"`
	DevOutputDir         string `env:"MAIL_DEV_DIR" envDefault:".mail"`
}

// UsePostmark reports whether both Postmark tokens are set.
func (c Config) UsePostmark() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}
