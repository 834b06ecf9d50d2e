package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные функции (используются для оборачивания ошибок из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (400)
// Оригинальный API отдает 400 для дубликатов, сохраняем контракт.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные переменные (для частых, статичных ошибок)
// =========================================================================

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusBadRequest,
)

// ErrInvalidToken - невалидный или истекший токен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrWeakPassword - пароль не проходит проверку сложности
var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже зарегистрирован
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"User already exists",
	http.StatusBadRequest,
)

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions - не хватает прав на операцию
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrAccountNotApproved - аккаунт еще не одобрен админом
var ErrAccountNotApproved = New(
	CodeForbidden,
	"user",
	"Account is not approved yet",
	http.StatusForbidden,
)

// --- Drives & Applications ---

// ErrDriveNotActive - drive закрыт, действия по нему недоступны
var ErrDriveNotActive = New(
	CodeInvalidStatus,
	"drive",
	"Drive is not active",
	http.StatusBadRequest,
)

// ErrAlreadyApplied - студент уже откликался на этот drive
var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"Already applied to this drive",
	http.StatusBadRequest,
)

// ErrNotEligible - CGPA студента ниже порога drive
var ErrNotEligible = New(
	CodeNotEligible,
	"application",
	"Not eligible: CGPA criteria not met",
	http.StatusBadRequest,
)
