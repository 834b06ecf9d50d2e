package dto

import "time"

// RegisterRequest - запрос на регистрацию пользователя
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,is-user-role"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest - запрос на обновление access токена
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UserResponse - публичное представление пользователя (без пароля)
type UserResponse struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	Role             string                 `json:"role"`
	Status           string                 `json:"status"`
	CollegeID        string                 `json:"collegeId,omitempty"`
	Branch           string                 `json:"branch,omitempty"`
	GraduationYear   int                    `json:"graduationYear,omitempty"`
	CGPA             float64                `json:"cgpa,omitempty"`
	Skills           []string               `json:"skills,omitempty"`
	Resume           string                 `json:"resume,omitempty"`
	ProfileCompleted bool                   `json:"profileCompleted"`
	CompanyDetails   map[string]interface{} `json:"companyDetails,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
}

// AuthResponse - ответ на успешную регистрацию / вход
type AuthResponse struct {
	User         *UserResponse `json:"user"`
	Token        string        `json:"token"`
	RefreshToken string        `json:"refreshToken,omitempty"`
}
