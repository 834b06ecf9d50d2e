package models

type UserRole string
type UserStatus string
type DriveStatus string
type ApplicationStatus string
type QuestionKind string

const (
	UserRoleStudent UserRole = "student"
	UserRoleCompany UserRole = "company"
	UserRoleAdmin   UserRole = "admin"

	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"

	DriveStatusActive DriveStatus = "active"
	DriveStatusClosed DriveStatus = "closed"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusSelected    ApplicationStatus = "selected"
	ApplicationStatusRejected    ApplicationStatus = "rejected"

	QuestionKindText QuestionKind = "text"
	QuestionKindMCQ  QuestionKind = "mcq"
)

// IsValidUserStatus проверяет, что статус входит в закрытый набор.
// Оригинальный API принимал любую строку, здесь набор закрыт.
func IsValidUserStatus(s UserStatus) bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusRejected:
		return true
	default:
		return false
	}
}

// IsValidApplicationStatus проверяет статус отклика
func IsValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusShortlisted,
		ApplicationStatusInterview, ApplicationStatusSelected, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// IsValidUserRole проверяет роль пользователя
func IsValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleStudent, UserRoleCompany, UserRoleAdmin:
		return true
	default:
		return false
	}
}
