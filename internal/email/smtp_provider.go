package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"skillgate_backend/internal/config"
	"skillgate_backend/internal/logger"
	"skillgate_backend/internal/models"
)

// SMTPProvider реализует Provider через SMTP (gomail)
type SMTPProvider struct {
	cfg       config.EmailConfig
	templates *TemplateManager
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(cfg config.EmailConfig) *SMTPProvider {
	return &SMTPProvider{
		cfg:       cfg,
		templates: NewTemplateManager(),
	}
}

// Send отправляет email через SMTP сервер
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	from := email.From
	if from == "" {
		from = p.cfg.FromEmail
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, p.cfg.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	d := gomail.NewDialer(
		p.cfg.SMTPHost,
		p.cfg.SMTPPort,
		p.cfg.SMTPUsername,
		p.cfg.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		logger.WithError(err).Error("Ошибка отправки email", "to", email.To, "subject", email.Subject)
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("Email отправлен", "to", email.To, "subject", email.Subject)
	return nil
}

// SendAccountDecision уведомляет пользователя о решении по его аккаунту
func (p *SMTPProvider) SendAccountDecision(to, name string, status models.UserStatus) error {
	subject, html, err := p.templates.AccountDecision(name, status)
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: html,
	})
}

// SendApplicationStatus уведомляет студента о смене статуса отклика
func (p *SMTPProvider) SendApplicationStatus(to, driveTitle string, status models.ApplicationStatus) error {
	subject, html, err := p.templates.ApplicationStatus(driveTitle, status)
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: html,
	})
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	if p.cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP host is not configured")
	}
	if p.cfg.SMTPPort == 0 {
		return fmt.Errorf("SMTP port is not configured")
	}
	if p.cfg.FromEmail == "" {
		return fmt.Errorf("from email is not configured")
	}
	return nil
}

// Close закрывает провайдер (SMTP не держит постоянное соединение)
func (p *SMTPProvider) Close() error {
	return nil
}
