package services

import (
	"skillgate_backend/internal/email"
	"skillgate_backend/internal/logger"
	"skillgate_backend/internal/models"
	"skillgate_backend/internal/repositories"
	"skillgate_backend/internal/services/dto"
	"skillgate_backend/pkg/apperrors"
)

type AdminService interface {
	Stats() (*dto.AdminStatsResponse, error)
	ListPendingUsers(role string) ([]dto.UserResponse, error)
	SetUserStatus(userID string, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error)
}

type AdminServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAdminService(userRepo repositories.UserRepository, refreshTokenRepo repositories.RefreshTokenRepository, emailProvider email.Provider) AdminService {
	return &AdminServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Stats - сводка для дашборда админа
func (s *AdminServiceImpl) Stats() (*dto.AdminStatsResponse, error) {
	totalCompanies, err := s.userRepo.CountByRole(models.UserRoleCompany)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalStudents, err := s.userRepo.CountByRole(models.UserRoleStudent)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	pendingStudents, err := s.userRepo.CountByRoleAndStatus(models.UserRoleStudent, models.UserStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingCompanies, err := s.userRepo.CountByRoleAndStatus(models.UserRoleCompany, models.UserStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminStatsResponse{
		TotalCompanies:   totalCompanies,
		TotalStudents:    totalStudents,
		PendingApprovals: pendingStudents + pendingCompanies,
	}, nil
}

// ListPendingUsers - пользователи, ожидающие одобрения.
// role фильтрует список; пустая роль - студенты и компании вместе.
func (s *AdminServiceImpl) ListPendingUsers(role string) ([]dto.UserResponse, error) {
	userRole := models.UserRole(role)
	if role != "" && !models.IsValidUserRole(userRole) {
		return nil, apperrors.ErrInvalidUserRole
	}

	users, err := s.userRepo.FindPending(userRole)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *dto.ToUserResponse(&users[i]))
	}
	return result, nil
}

// SetUserStatus - решение админа по аккаунту (approve / reject).
// Повторная установка того же статуса идемпотентна.
func (s *AdminServiceImpl) SetUserStatus(userID string, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	status := models.UserStatus(req.Status)
	if !models.IsValidUserStatus(status) {
		return nil, apperrors.ErrInvalidStatus("user", "Invalid user status")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateStatus(user.ID, status); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	user.Status = status

	// У отклоненного аккаунта отзываем все refresh-сессии
	if status == models.UserStatusRejected {
		if err := s.refreshTokenRepo.DeleteByUser(user.ID); err != nil {
			logger.WithError(err).Warn("Не удалось отозвать refresh-токены пользователя", "user_id", user.ID)
		}
	}

	// Уведомление шлем только на окончательные решения
	if status == models.UserStatusApproved || status == models.UserStatusRejected {
		go func(to, name string, decided models.UserStatus) {
			if err := s.emailProvider.SendAccountDecision(to, name, decided); err != nil {
				logger.WithError(err).Warn("Не удалось отправить уведомление о решении по аккаунту", "to", to)
			}
		}(user.Email, user.Name, status)
	}

	return dto.ToUserResponse(user), nil
}
