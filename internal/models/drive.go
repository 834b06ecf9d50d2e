package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Drive struct {
	BaseModel
	CompanyID   string         `gorm:"type:uuid;not null;index"`
	CompanyName string         `gorm:"not null"` // снимок имени компании на момент создания
	Title       string         `gorm:"not null"`
	Description string         `gorm:"not null"`
	BatchYear   int            `gorm:"not null"`
	CGPACutoff  float64        `gorm:"column:cgpa_cutoff;not null"`
	Skills      pq.StringArray `gorm:"type:text[]"`
	Salary      string         `gorm:"not null"`
	Deadline    time.Time      `gorm:"not null"`
	TestDate    *time.Time
	Questions   datatypes.JSON `gorm:"type:jsonb"`
	Duration    int            `gorm:"default:60"` // длительность теста в минутах
	Status      DriveStatus    `gorm:"type:varchar(20);default:'active'"`
}

// Question - один вопрос встроенного скрининг-теста drive
type Question struct {
	Question string       `json:"question"`
	Options  []string     `json:"options,omitempty"` // только для mcq
	Kind     QuestionKind `json:"type"`
	Marks    int          `json:"marks"`
}
