package app

import (
	"skillgate_backend/internal/email"
	"skillgate_backend/internal/logger"
	"skillgate_backend/internal/models"
)

// MockEmailProvider используется для тестов и локальной разработки,
// когда SMTP не сконфигурирован. Письма только логируются.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	logger.Info("[MOCK] Email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) SendAccountDecision(to, name string, status models.UserStatus) error {
	logger.Info("[MOCK] Account decision email", "to", to, "status", status)
	return nil
}

func (m *MockEmailProvider) SendApplicationStatus(to, driveTitle string, status models.ApplicationStatus) error {
	logger.Info("[MOCK] Application status email", "to", to, "drive", driveTitle, "status", status)
	return nil
}

func (m *MockEmailProvider) Validate() error { return nil }

func (m *MockEmailProvider) Close() error { return nil }
