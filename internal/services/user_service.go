package services

import (
	"encoding/json"

	"github.com/lib/pq"

	"skillgate_backend/internal/auth"
	"skillgate_backend/internal/models"
	"skillgate_backend/internal/repositories"
	"skillgate_backend/internal/services/dto"
	"skillgate_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(userID string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetProfile - профиль текущего пользователя
func (s *UserServiceImpl) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.ToUserResponse(user), nil
}

// UpdateProfile - обновление профиля текущего пользователя.
// Обновляются только присланные поля; email и роль не меняются.
// В ответе свежий токен, чтобы клиент не работал с устаревшими claims.
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hashed
	}

	switch user.Role {
	case models.UserRoleStudent:
		s.applyStudentFields(user, req)
	case models.UserRoleCompany:
		if err := s.mergeCompanyDetails(user, req.CompanyDetails); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	}, nil
}

// applyStudentFields применяет студенческие поля запроса к модели.
// Любое обновление профиля студента помечает профиль заполненным.
func (s *UserServiceImpl) applyStudentFields(user *models.User, req *dto.UpdateProfileRequest) {
	if req.CollegeID != nil {
		user.CollegeID = *req.CollegeID
	}
	if req.Branch != nil {
		user.Branch = *req.Branch
	}
	if req.GraduationYear != nil {
		user.GraduationYear = *req.GraduationYear
	}
	if req.CGPA != nil {
		user.CGPA = *req.CGPA
	}
	if req.Skills != nil {
		user.Skills = pq.StringArray(*req.Skills)
	}
	if req.Resume != nil {
		user.Resume = *req.Resume
	}
	user.ProfileCompleted = true
}

// mergeCompanyDetails мерджит присланные ключи companyDetails
// с уже сохраненными (частичное обновление не затирает остальное)
func (s *UserServiceImpl) mergeCompanyDetails(user *models.User, incoming map[string]interface{}) error {
	if len(incoming) == 0 {
		return nil
	}

	current := make(map[string]interface{})
	if len(user.CompanyDetails) > 0 {
		if err := json.Unmarshal(user.CompanyDetails, &current); err != nil {
			return err
		}
	}

	for k, v := range incoming {
		current[k] = v
	}

	merged, err := json.Marshal(current)
	if err != nil {
		return err
	}

	user.CompanyDetails = merged
	return nil
}
