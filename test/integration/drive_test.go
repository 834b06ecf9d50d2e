package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillgate_backend/internal/models"
	"skillgate_backend/test/helpers"
)

// TestCreateDrive_Success - одобренная компания создает набор
func TestCreateDrive_Success(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, company := helpers.CreateAndLoginUser(t, ts, "Acme Corp", "acme-drive@test.com", "pass123456", models.UserRoleCompany)

	driveBody := map[string]interface{}{
		"title":       "Backend Engineer 2026",
		"description": "Go backend hiring drive",
		"batchYear":   2026,
		"cgpaCutoff":  7.5,
		"skills":      []string{"Go", "PostgreSQL"},
		"salary":      "14 LPA",
		"deadline":    time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
		"questions": []map[string]interface{}{
			{"question": "What is a goroutine?", "type": "text", "marks": 5},
			{"question": "Pick the SQL join type", "type": "mcq", "options": []string{"INNER", "OUTER"}, "marks": 2},
		},
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/drives", token, driveBody)

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var drive struct {
		ID          string `json:"id"`
		CompanyID   string `json:"companyId"`
		CompanyName string `json:"companyName"`
		Status      string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &drive))
	assert.Equal(t, company.ID, drive.CompanyID)
	// Имя компании снимается в снапшот
	assert.Equal(t, "Acme Corp", drive.CompanyName)
	assert.Equal(t, "active", drive.Status)
}

// TestCreateDrive_MissingCGPACutoff - без cgpaCutoff набор не создается,
// иначе порог по умолчанию стал бы нулевым и пропускал бы всех
func TestCreateDrive_MissingCGPACutoff(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginUser(t, ts, "Cutoff Corp", "cutoff-corp@test.com", "pass123456", models.UserRoleCompany)

	driveBody := map[string]interface{}{
		"title":       "No Cutoff Drive",
		"description": "drive without cgpaCutoff",
		"batchYear":   2026,
		"salary":      "10 LPA",
		"deadline":    time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/drives", token, driveBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "cgpaCutoff")

	// Явный нулевой порог при этом валиден
	driveBody["cgpaCutoff"] = 0.0
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/drives", token, driveBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
}

// TestCreateDrive_PendingCompanyForbidden - неодобренная компания не создает наборы
func TestCreateDrive_PendingCompanyForbidden(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	pendingCompany := &models.User{
		Name:         "Pending Corp",
		Email:        "pending-corp@test.com",
		PasswordHash: "pass123456",
		Role:         models.UserRoleCompany,
		Status:       models.UserStatusPending,
	}
	require.NoError(t, helpers.CreateUser(t, ts.DB, pendingCompany))

	loginBody := map[string]interface{}{"email": pendingCompany.Email, "password": "pass123456"}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))

	driveBody := map[string]interface{}{
		"title":       "Should Fail",
		"description": "pending company",
		"batchYear":   2026,
		"cgpaCutoff":  7.0,
		"salary":      "10 LPA",
		"deadline":    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}

	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/drives", login.Token, driveBody)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Account is not approved yet")
}

// TestCreateDrive_StudentForbidden - студент не может создавать наборы
func TestCreateDrive_StudentForbidden(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginUser(t, ts, "Student", "student-drive@test.com", "pass123456", models.UserRoleStudent)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/drives", token, map[string]interface{}{})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestListActiveDrives_FiltersClosedAndExpired - студенты видят только
// активные наборы с непрошедшим дедлайном
func TestListActiveDrives_FiltersClosedAndExpired(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, company := helpers.CreateAndLoginUser(t, ts, "Filter Corp", "filter-corp@test.com", "pass123456", models.UserRoleCompany)

	active := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Visible Drive", 7.0)

	closed := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Closed Drive", 7.0)
	require.NoError(t, ts.DB.Model(&models.Drive{}).Where("id = ?", closed.ID).Update("status", models.DriveStatusClosed).Error)

	expired := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Expired Drive", 7.0)
	require.NoError(t, ts.DB.Model(&models.Drive{}).Where("id = ?", expired.ID).Update("deadline", time.Now().Add(-time.Hour)).Error)

	studentToken, _ := helpers.CreateAndLoginUser(t, ts, "Viewer", "viewer@test.com", "pass123456", models.UserRoleStudent)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/drives", studentToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, active.Title)
	assert.NotContains(t, bodyStr, "Closed Drive")
	assert.NotContains(t, bodyStr, "Expired Drive")
}

// TestCloseDrive_OwnerOnly - закрыть набор может только владелец
func TestCloseDrive_OwnerOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginUser(t, ts, "Owner Corp", "owner-corp@test.com", "pass123456", models.UserRoleCompany)
	otherToken, _ := helpers.CreateAndLoginUser(t, ts, "Other Corp", "other-corp@test.com", "pass123456", models.UserRoleCompany)

	drive := helpers.CreateTestDrive(t, ts.DB, owner.ID, owner.Name, "Closable Drive", 7.0)

	// Чужая компания получает отказ
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/drives/"+drive.ID+"/close", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Владелец закрывает
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/drives/"+drive.ID+"/close", ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Повторное закрытие - ошибка: набор уже не активен
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/drives/"+drive.ID+"/close", ownerToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Drive is not active")
}

// TestGetDriveTest_StripsAnswersMetadata - тест набора отдает только
// вопросы и длительность
func TestGetDriveTest_StripsAnswersMetadata(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, company := helpers.CreateAndLoginUser(t, ts, "Quiz Corp", "quiz-corp@test.com", "pass123456", models.UserRoleCompany)

	drive := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Quiz Drive", 7.0)
	questions := `[{"question":"What is Go?","type":"text","marks":5}]`
	require.NoError(t, ts.DB.Model(&models.Drive{}).Where("id = ?", drive.ID).Update("questions", questions).Error)

	studentToken, _ := helpers.CreateAndLoginUser(t, ts, "Quiz Student", "quiz-student@test.com", "pass123456", models.UserRoleStudent)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/drives/"+drive.ID+"/test", studentToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "What is Go?")
	assert.Contains(t, bodyStr, `"duration":60`)
	// Поля набора, не относящиеся к тесту, не отдаются
	assert.NotContains(t, bodyStr, "cgpaCutoff")
	assert.NotContains(t, bodyStr, "salary")
}

// TestListMyDrives_WithApplicantCount - список наборов компании со счетчиками
func TestListMyDrives_WithApplicantCount(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	companyToken, company := helpers.CreateAndLoginUser(t, ts, "Count Corp", "count-corp@test.com", "pass123456", models.UserRoleCompany)
	drive := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Counted Drive", 7.0)

	// Два студента откликаются
	for _, email := range []string{"count-s1@test.com", "count-s2@test.com"} {
		student := &models.User{
			Name:         "Student",
			Email:        email,
			PasswordHash: "pass123456",
			Role:         models.UserRoleStudent,
			CGPA:         8.0,
		}
		require.NoError(t, helpers.CreateUser(t, ts.DB, student))
		application := &models.Application{
			StudentID: student.ID,
			DriveID:   drive.ID,
			Status:    models.ApplicationStatusPending,
			AppliedAt: time.Now(),
		}
		require.NoError(t, ts.DB.Create(application).Error)
	}

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/drives/my", companyToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"applicantCount":2`)
}
