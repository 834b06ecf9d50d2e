package repositories

import (
	"errors"
	"time"

	"skillgate_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByStudentAndDrive(studentID, driveID string) (*models.Application, error)
	FindByStudent(studentID string) ([]models.Application, error)
	FindByDrive(driveID string) ([]models.Application, error)
	UpdateStatus(applicationID string, status models.ApplicationStatus) error
	CountByDrive(driveID string) (int64, error)
	CountByDrives(driveIDs []string) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		// Составной уникальный индекс (student_id, drive_id) гарантирует
		// один отклик на пару даже при одновременных запросах.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByStudentAndDrive(studentID, driveID string) (*models.Application, error) {
	var application models.Application
	err := r.db.
		Where("student_id = ? AND drive_id = ?", studentID, driveID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByStudent(studentID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Drive").
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByDrive(driveID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Student").
		Where("drive_id = ?", driveID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(applicationID string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", applicationID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountByDrive(driveID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("drive_id = ?", driveID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByDrives(driveIDs []string) (int64, error) {
	if len(driveIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.Model(&models.Application{}).
		Where("drive_id IN ?", driveIDs).
		Count(&count).Error
	return count, err
}
