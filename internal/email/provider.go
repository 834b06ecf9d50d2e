package email

import "skillgate_backend/internal/models"

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendAccountDecision уведомляет пользователя о решении админа
	// (approved / rejected) по его аккаунту
	SendAccountDecision(to, name string, status models.UserStatus) error

	// SendApplicationStatus уведомляет студента о смене статуса отклика
	SendApplicationStatus(to, driveTitle string, status models.ApplicationStatus) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}
