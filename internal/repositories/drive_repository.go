package repositories

import (
	"errors"
	"time"

	"skillgate_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDriveNotFound = errors.New("drive not found")

type DriveRepository interface {
	Create(drive *models.Drive) error
	FindByID(id string) (*models.Drive, error)
	FindActive() ([]models.Drive, error)
	FindByCompany(companyID string) ([]models.Drive, error)
	UpdateStatus(driveID string, status models.DriveStatus) error
	IDsByCompany(companyID string) ([]string, error)
	CloseExpired() (int64, error)
}

type DriveRepositoryImpl struct {
	db *gorm.DB
}

func NewDriveRepository(db *gorm.DB) DriveRepository {
	return &DriveRepositoryImpl{db: db}
}

func (r *DriveRepositoryImpl) Create(drive *models.Drive) error {
	return r.db.Create(drive).Error
}

func (r *DriveRepositoryImpl) FindByID(id string) (*models.Drive, error) {
	var drive models.Drive
	err := r.db.First(&drive, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriveNotFound
		}
		return nil, err
	}
	return &drive, nil
}

// FindActive возвращает активные drives с дедлайном в будущем,
// новые первыми — витрина для студентов.
func (r *DriveRepositoryImpl) FindActive() ([]models.Drive, error) {
	var drives []models.Drive
	err := r.db.
		Where("status = ? AND deadline >= ?", models.DriveStatusActive, time.Now()).
		Order("created_at DESC").
		Find(&drives).Error
	return drives, err
}

func (r *DriveRepositoryImpl) FindByCompany(companyID string) ([]models.Drive, error) {
	var drives []models.Drive
	err := r.db.
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&drives).Error
	return drives, err
}

func (r *DriveRepositoryImpl) UpdateStatus(driveID string, status models.DriveStatus) error {
	result := r.db.Model(&models.Drive{}).Where("id = ?", driveID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDriveNotFound
	}
	return nil
}

func (r *DriveRepositoryImpl) IDsByCompany(companyID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Drive{}).
		Where("company_id = ?", companyID).
		Pluck("id", &ids).Error
	return ids, err
}

// CloseExpired закрывает активные drives с прошедшим дедлайном.
// Вызывается фоновым воркером.
func (r *DriveRepositoryImpl) CloseExpired() (int64, error) {
	result := r.db.Model(&models.Drive{}).
		Where("status = ? AND deadline < ?", models.DriveStatusActive, time.Now()).
		Updates(map[string]interface{}{
			"status":     models.DriveStatusClosed,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
