package email

import "jobboard_backend/internal/logger"

// MockProvider logs instead of sending. Used in development and tests
// where no SMTP server is configured.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(email *Email) error {
	logger.Info("mock email send", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *MockProvider) SendPasswordReset(to, resetToken string) error {
	logger.Info("mock password reset email", "to", to, "token", resetToken)
	return nil
}
