package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skillgate_backend/internal/models"
)

// CreateUser создает пользователя с автоматическим хешированием пароля.
// По умолчанию пользователь одобрен.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		rawPassword := user.PasswordHash
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if user.Status == "" {
		user.Status = models.UserStatusApproved
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password, // Сырой пароль, CreateUser захеширует
		Role:         role,
	}
	err := CreateUser(t, ts.DB, user)
	require.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token, user
}

// CreateTestDrive создает drive напрямую в БД
func CreateTestDrive(t *testing.T, db *gorm.DB, companyID, companyName, title string, cgpaCutoff float64) models.Drive {
	drive := models.Drive{
		CompanyID:   companyID,
		CompanyName: companyName,
		Title:       title,
		Description: "Test description",
		BatchYear:   time.Now().Year() + 1,
		CGPACutoff:  cgpaCutoff,
		Salary:      "12 LPA",
		Deadline:    time.Now().Add(30 * 24 * time.Hour),
		Duration:    60,
		Status:      models.DriveStatusActive,
	}
	if err := db.Create(&drive).Error; err != nil {
		t.Fatalf("Failed to create test drive: %v", err)
	}
	return drive
}
