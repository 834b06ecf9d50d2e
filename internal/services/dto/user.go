package dto

import (
	"encoding/json"

	"skillgate_backend/internal/models"
)

// UpdateProfileRequest - запрос на обновление профиля.
// Поля-указатели позволяют отличить "не прислано" от нулевого значения.
type UpdateProfileRequest struct {
	Name           *string                `json:"name" validate:"omitempty,min=2,max=100"`
	Password       *string                `json:"password" validate:"omitempty,min=6"`
	CollegeID      *string                `json:"collegeId"`
	Branch         *string                `json:"branch"`
	GraduationYear *int                   `json:"graduationYear" validate:"omitempty,gte=2000,lte=2100"`
	CGPA           *float64               `json:"cgpa" validate:"omitempty,gte=0,lte=10"`
	Skills         *StringList            `json:"skills"`
	Resume         *string                `json:"resume"`
	CompanyDetails map[string]interface{} `json:"companyDetails"`
}

// ProfileResponse - профиль вместе с обновленным токеном
type ProfileResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token,omitempty"`
}

// ToUserResponse конвертирует модель в публичное представление
func ToUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             string(u.Role),
		Status:           string(u.Status),
		CollegeID:        u.CollegeID,
		Branch:           u.Branch,
		GraduationYear:   u.GraduationYear,
		CGPA:             u.CGPA,
		Skills:           u.Skills,
		Resume:           u.Resume,
		ProfileCompleted: u.ProfileCompleted,
		CreatedAt:        u.CreatedAt,
	}

	if len(u.CompanyDetails) > 0 {
		var details map[string]interface{}
		if err := json.Unmarshal(u.CompanyDetails, &details); err == nil {
			resp.CompanyDetails = details
		}
	}

	return resp
}
