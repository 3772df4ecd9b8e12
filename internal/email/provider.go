package email

// Email is a single outbound message.
type Email struct {
	To      []string
	Subject string
	HTML    string
}

// Provider sends transactional mail. The only flow wired today is the
// password reset token.
type Provider interface {
	Send(email *Email) error
	SendPasswordReset(to, resetToken string) error
}
