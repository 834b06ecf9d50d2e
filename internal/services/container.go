package services

import "skillgate_backend/internal/email"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	DriveService       DriveService
	ApplicationService ApplicationService
	AdminService       AdminService
	EmailService       email.Provider
}
