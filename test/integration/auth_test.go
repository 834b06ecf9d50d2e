package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillgate_backend/internal/models"
	"skillgate_backend/test/helpers"
)

// TestRegister_StudentIsPending - новый студент ждет одобрения админа
func TestRegister_StudentIsPending(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	registerBody := map[string]interface{}{
		"name":     "Test Student",
		"email":    "student-pending@test.com",
		"password": "super_password123",
		"role":     "student",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var resp struct {
		User struct {
			Status string `json:"status"`
			Role   string `json:"role"`
		} `json:"user"`
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.Equal(t, "pending", resp.User.Status)
	assert.Equal(t, "student", resp.User.Role)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
}

// TestRegister_DefaultRoleIsStudent - роль по умолчанию student
func TestRegister_DefaultRoleIsStudent(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	registerBody := map[string]interface{}{
		"name":     "No Role User",
		"email":    "norole@test.com",
		"password": "super_password123",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, `"role":"student"`)
}

// TestRegister_DuplicateEmail - защита от дубликатов email
func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "User One",
		Email:        "duplicate@test.com",
		PasswordHash: "pass123",
		Role:         models.UserRoleStudent,
	})
	require.NoError(t, err)

	registerBody := map[string]interface{}{
		"name":     "User Two",
		"email":    "duplicate@test.com",
		"password": "pass123456",
		"role":     "student",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "User already exists")
}

// TestLogin_WrongPassword - неверный пароль не раскрывает, что email существует
func TestLogin_WrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Login User",
		Email:        "login@test.com",
		PasswordHash: "correct_password",
		Role:         models.UserRoleStudent,
	})
	require.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    "login@test.com",
		"password": "wrong_password",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")

	// Несуществующий email дает тот же ответ
	loginBody["email"] = "ghost@test.com"
	res2, bodyStr2 := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, res.StatusCode, res2.StatusCode)
	assert.Contains(t, bodyStr2, "Invalid email or password")
}

// TestRefreshToken_Rotation - refresh токен одноразовый
func TestRefreshToken_Rotation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	registerBody := map[string]interface{}{
		"name":     "Refresh User",
		"email":    "refresh@test.com",
		"password": "super_password123",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var reg struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &reg))

	// Первый refresh проходит
	refreshBody := map[string]interface{}{"refreshToken": reg.RefreshToken}
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	// Повторный refresh с тем же токеном - уже нет
	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestLogout_Idempotent - повторный logout и logout с чужим токеном не падают
func TestLogout_Idempotent(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	registerBody := map[string]interface{}{
		"name":     "Logout User",
		"email":    "logout@test.com",
		"password": "super_password123",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var reg struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &reg))

	logoutBody := map[string]interface{}{"refreshToken": reg.RefreshToken}
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/auth/logout", "", logoutBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	// Второй logout с тем же токеном - no-op, не 500
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/auth/logout", "", logoutBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	// Токен при этом действительно отозван
	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", logoutBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Logout с никогда не существовавшим токеном тоже no-op
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/auth/logout", "", map[string]interface{}{"refreshToken": "deadbeefdeadbeef"})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
}

// TestGetProfile_Success - профиль по токену
func TestGetProfile_Success(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	userToken, user := helpers.CreateAndLoginUser(t, ts, "Profile User", "profile@test.com", "pass123456", models.UserRoleStudent)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/profile", userToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, user.Name)
	assert.NotContains(t, bodyStr, "PasswordHash")
}

// TestGetProfile_NoToken - без токена 401
func TestGetProfile_NoToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestUpdateProfile_StudentCompletesProfile - любое обновление профиля
// студента помечает его заполненным и возвращает свежий токен
func TestUpdateProfile_StudentCompletesProfile(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	userToken, _ := helpers.CreateAndLoginUser(t, ts, "Student", "complete@test.com", "pass123456", models.UserRoleStudent)

	updateBody := map[string]interface{}{
		"collegeId":      "CS2021042",
		"branch":         "Computer Science",
		"graduationYear": 2026,
		"cgpa":           8.4,
		"skills":         "Go, SQL, Docker",
	}

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/auth/profile", userToken, updateBody)

	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var resp struct {
		User struct {
			ProfileCompleted bool     `json:"profileCompleted"`
			CGPA             float64  `json:"cgpa"`
			Skills           []string `json:"skills"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.True(t, resp.User.ProfileCompleted)
	assert.Equal(t, 8.4, resp.User.CGPA)
	// CSV-строка skills разбирается в список
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, resp.User.Skills)
	assert.NotEmpty(t, resp.Token)
}

// TestUpdateProfile_CompanyDetailsMerge - частичное обновление
// companyDetails не затирает остальные ключи
func TestUpdateProfile_CompanyDetailsMerge(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	userToken, _ := helpers.CreateAndLoginUser(t, ts, "Acme Corp", "acme@test.com", "pass123456", models.UserRoleCompany)

	first := map[string]interface{}{
		"companyDetails": map[string]interface{}{
			"industryType": "IT",
			"companySize":  "100-500",
		},
	}
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/auth/profile", userToken, first)
	require.Equal(t, http.StatusOK, res.StatusCode)

	second := map[string]interface{}{
		"companyDetails": map[string]interface{}{
			"websiteUrl": "https://acme.test",
		},
	}
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/auth/profile", userToken, second)
	require.Equal(t, http.StatusOK, res.StatusCode)

	assert.Contains(t, bodyStr, "IT")
	assert.Contains(t, bodyStr, "https://acme.test")
}
