package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Name         string     `gorm:"not null"`
	Email        string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	Role         UserRole   `gorm:"type:varchar(20);not null"`
	Status       UserStatus `gorm:"type:varchar(20);default:'pending'"`

	// Поля студента
	CollegeID        string
	Branch           string
	GraduationYear   int
	CGPA             float64        `gorm:"column:cgpa"`
	Skills           pq.StringArray `gorm:"type:text[]"`
	Resume           string
	ProfileCompleted bool `gorm:"default:false"`

	// Поля компании (вложенный объект companyDetails)
	CompanyDetails datatypes.JSON `gorm:"type:jsonb"`

	// Relations
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

// CompanyDetails - структура вложенного объекта companyDetails.
// Хранится как JSONB, мерджится по ключам при обновлении профиля.
type CompanyDetails struct {
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	IndustryType       string `json:"industryType,omitempty"`
	CompanySize        string `json:"companySize,omitempty"`
	WebsiteURL         string `json:"websiteUrl,omitempty"`
	Description        string `json:"description,omitempty"`
	ContactPerson      string `json:"contactPerson,omitempty"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
