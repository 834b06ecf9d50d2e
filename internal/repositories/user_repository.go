package repositories

import (
	"errors"
	"time"

	"skillgate_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	// User operations
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateStatus(userID string, status models.UserStatus) error

	// Admin operations
	FindPending(role models.UserRole) ([]models.User, error)
	CountByRole(role models.UserRole) (int64, error)
	CountByRoleAndStatus(role models.UserRole, status models.UserStatus) (int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// User operations

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	// Предварительная проверка на дубликат email
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	if err := r.db.Create(user).Error; err != nil {
		// Уникальный индекс на email закрывает гонку двух регистраций
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"name":              user.Name,
		"password_hash":     user.PasswordHash,
		"status":            user.Status,
		"college_id":        user.CollegeID,
		"branch":            user.Branch,
		"graduation_year":   user.GraduationYear,
		"cgpa":              user.CGPA,
		"skills":            user.Skills,
		"resume":            user.Resume,
		"profile_completed": user.ProfileCompleted,
		"company_details":   user.CompanyDetails,
		"updated_at":        time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateStatus(userID string, status models.UserStatus) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Admin operations

func (r *UserRepositoryImpl) FindPending(role models.UserRole) ([]models.User, error) {
	var users []models.User
	query := r.db.Where("status = ?", models.UserStatusPending)

	if role != "" {
		query = query.Where("role = ?", role)
	} else {
		// Админы никогда не бывают pending, но фильтр сохраняем явно
		query = query.Where("role IN ?", []models.UserRole{models.UserRoleStudent, models.UserRoleCompany})
	}

	err := query.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountByRoleAndStatus(role models.UserRole, status models.UserStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("role = ? AND status = ?", role, status).
		Count(&count).Error
	return count, err
}
