// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"eventure-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

// NewEmailService builds the mail sender. With no SMTP host configured the
// service is a no-op, which is what tests and local setups want.
func NewEmailService(cfg *config.Config) *EmailService {
	var dialer *gomail.Dialer
	if cfg.SMTPHost != "" {
		dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendWelcomeEmail greets a freshly registered user.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	if es.dialer == nil {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to Eventure")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Hello %s!</h2>
    <p>Your Eventure account is ready. Log in to browse upcoming events or create your own.</p>
    <p>See you there,<br>The Eventure team</p>
</body>
</html>`, name)

	m.SetBody("text/html", htmlBody)

	return es.dialer.DialAndSend(m)
}
