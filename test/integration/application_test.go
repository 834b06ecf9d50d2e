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

// createApprovedStudent создает одобренного студента с заданным CGPA и логинит его
func createApprovedStudent(t *testing.T, ts *helpers.TestServer, email string, cgpa float64) (string, *models.User) {
	student := &models.User{
		Name:             "Applicant",
		Email:            email,
		PasswordHash:     "pass123456",
		Role:             models.UserRoleStudent,
		Status:           models.UserStatusApproved,
		CGPA:             cgpa,
		ProfileCompleted: true,
	}
	require.NoError(t, helpers.CreateUser(t, ts.DB, student))

	loginBody := map[string]interface{}{"email": email, "password": "pass123456"}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))
	return login.Token, student
}

// TestApply_CGPAEqualToCutoffSucceeds - CGPA равный порогу проходит
func TestApply_CGPAEqualToCutoffSucceeds(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, company := helpers.CreateAndLoginUser(t, ts, "Cutoff Corp", "cutoff-corp@test.com", "pass123456", models.UserRoleCompany)
	drive := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Cutoff Drive", 7.5)

	token, _ := createApprovedStudent(t, ts, "boundary@test.com", 7.5)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{"driveId": drive.ID})

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, `"status":"pending"`)
}

// TestApply_BelowCutoffRejected - CGPA ниже порога отклоняется
func TestApply_BelowCutoffRejected(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, company := helpers.CreateAndLoginUser(t, ts, "Strict Corp", "strict-corp@test.com", "pass123456", models.UserRoleCompany)
	drive := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Strict Drive", 8.0)

	token, _ := createApprovedStudent(t, ts, "below@test.com", 7.99)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{"driveId": drive.ID})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Not eligible: CGPA criteria not met")
}

// TestApply_DuplicateRejected - второй отклик на тот же набор отклоняется
func TestApply_DuplicateRejected(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, company := helpers.CreateAndLoginUser(t, ts, "Dup Corp", "dup-corp@test.com", "pass123456", models.UserRoleCompany)
	drive := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Dup Drive", 7.0)

	token, _ := createApprovedStudent(t, ts, "dup-student@test.com", 8.0)

	body := map[string]interface{}{"driveId": drive.ID}

	res, _ := ts.SendRequest(t, "POST", "/api/v1/applications", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications", token, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Already applied to this drive")
}

// TestApply_PendingStudentForbidden - неодобренный студент не откликается
func TestApply_PendingStudentForbidden(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, company := helpers.CreateAndLoginUser(t, ts, "Gate Corp", "gate-corp@test.com", "pass123456", models.UserRoleCompany)
	drive := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Gate Drive", 7.0)

	pending := &models.User{
		Name:         "Pending Student",
		Email:        "pending-student@test.com",
		PasswordHash: "pass123456",
		Role:         models.UserRoleStudent,
		Status:       models.UserStatusPending,
		CGPA:         9.0,
	}
	require.NoError(t, helpers.CreateUser(t, ts.DB, pending))

	loginBody := map[string]interface{}{"email": pending.Email, "password": "pass123456"}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))

	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/applications", login.Token, map[string]interface{}{"driveId": drive.ID})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Account is not approved yet")
}

// TestApply_MissingDriveNotFound - отклик на несуществующий набор дает 404
func TestApply_MissingDriveNotFound(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := createApprovedStudent(t, ts, "ghost-drive@test.com", 8.0)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{
		"driveId": "00000000-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestListMyApplications - отклики студента с данными набора
func TestListMyApplications(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, company := helpers.CreateAndLoginUser(t, ts, "List Corp", "list-corp@test.com", "pass123456", models.UserRoleCompany)
	drive := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Listed Drive", 7.0)

	token, _ := createApprovedStudent(t, ts, "lister@test.com", 8.0)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{"driveId": drive.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/applications/my", token, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Listed Drive")
	assert.Contains(t, bodyStr, `"total":1`)
}

// TestUpdateApplicationStatus_OwnerAndIdempotent - статус меняет только
// владелец набора; повторная установка того же статуса не ошибка
func TestUpdateApplicationStatus_OwnerAndIdempotent(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginUser(t, ts, "HR Corp", "hr-corp@test.com", "pass123456", models.UserRoleCompany)
	otherToken, _ := helpers.CreateAndLoginUser(t, ts, "Spy Corp", "spy-corp@test.com", "pass123456", models.UserRoleCompany)

	drive := helpers.CreateTestDrive(t, ts.DB, owner.ID, owner.Name, "HR Drive", 7.0)
	_, student := createApprovedStudent(t, ts, "hr-student@test.com", 8.0)

	application := &models.Application{
		StudentID: student.ID,
		DriveID:   drive.ID,
		Status:    models.ApplicationStatusPending,
		AppliedAt: time.Now(),
	}
	require.NoError(t, ts.DB.Create(application).Error)

	statusBody := map[string]interface{}{"status": "shortlisted"}

	// Чужая компания получает отказ
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/applications/"+application.ID+"/status", otherToken, statusBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Владелец меняет статус
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/applications/"+application.ID+"/status", ownerToken, statusBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, `"status":"shortlisted"`)

	// Повторная установка того же статуса идемпотентна
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/applications/"+application.ID+"/status", ownerToken, statusBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Невалидный статус отклоняется на валидации
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/applications/"+application.ID+"/status", ownerToken, map[string]interface{}{"status": "hired"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestCompanyStats - сводка по наборам и откликам компании
func TestCompanyStats(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	companyToken, company := helpers.CreateAndLoginUser(t, ts, "Stats Corp", "stats-corp@test.com", "pass123456", models.UserRoleCompany)

	d1 := helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Stats Drive 1", 7.0)
	helpers.CreateTestDrive(t, ts.DB, company.ID, company.Name, "Stats Drive 2", 7.0)

	_, student := createApprovedStudent(t, ts, "stats-student@test.com", 8.0)
	application := &models.Application{
		StudentID: student.ID,
		DriveID:   d1.ID,
		Status:    models.ApplicationStatusPending,
		AppliedAt: time.Now(),
	}
	require.NoError(t, ts.DB.Create(application).Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/applications/stats", companyToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"totalDrives":2`)
	assert.Contains(t, bodyStr, `"totalApplications":1`)
}
