package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"skillgate_backend/internal/auth"
	"skillgate_backend/internal/models"
	"skillgate_backend/internal/repositories"
	"skillgate_backend/internal/services/dto"
	"skillgate_backend/pkg/apperrors"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Register - регистрация нового пользователя.
// Студенты и компании создаются в статусе pending и ждут одобрения админа,
// админы одобряются сразу.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	// Роль по умолчанию - студент
	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleStudent
	}
	if !models.IsValidUserRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	status := models.UserStatusPending
	if role == models.UserRoleAdmin {
		status = models.UserStatusApproved
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Status:       status,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

// Login - аутентификация пользователя.
// Pending-пользователи входят свободно: одобрение проверяется
// на операциях, которые его требуют.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

// RefreshToken - обновление access token по refresh token с ротацией
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.refreshTokenRepo.DeleteByToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Ротация: старый токен удаляется, ответ несет новый
	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

// Logout - выход (удаление refresh token).
// Неизвестный или уже ротированный токен - no-op: logout идемпотентен.
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// buildAuthResponse генерирует пару токенов и собирает ответ
func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:         dto.ToUserResponse(user),
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// createRefreshToken создает и сохраняет refresh token
func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	refreshToken, err := generateRandomToken()
	if err != nil {
		return "", err
	}

	model := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(model); err != nil {
		return "", err
	}

	return refreshToken, nil
}

// generateRandomToken генерирует криптостойкий случайный токен
func generateRandomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
