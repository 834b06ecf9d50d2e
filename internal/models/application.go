package models

import "time"

// Application - один отклик на drive, строго один на пару (student, drive).
// Уникальный составной индекс закрывает гонку двух одновременных apply.
type Application struct {
	BaseModel
	StudentID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_student_drive"`
	DriveID   string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_student_drive"`
	Status    ApplicationStatus `gorm:"type:varchar(20);default:'pending'"`
	AppliedAt time.Time         `gorm:"not null;index"`

	// Relations
	Student User  `gorm:"foreignKey:StudentID"`
	Drive   Drive `gorm:"foreignKey:DriveID"`
}
