package email

import (
	"fmt"

	"jobboard_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendPasswordReset(to, resetToken string) error {
	body := fmt.Sprintf(passwordResetTemplate, resetToken)
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Password reset request",
		HTML:    body,
	})
}

const passwordResetTemplate = `<html><body>
<p>We received a request to reset your password.</p>
<p>Your reset token is: <strong>%s</strong></p>
<p>The token expires in one hour. If you did not request a reset, ignore this message.</p>
</body></html>`
