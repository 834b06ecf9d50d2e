package dto

import (
	"encoding/json"
	"time"

	"skillgate_backend/internal/models"
)

// CreateDriveRequest - запрос компании на создание набора
type CreateDriveRequest struct {
	Title       string            `json:"title" validate:"required,min=2,max=200"`
	Description string            `json:"description" validate:"required"`
	BatchYear   int               `json:"batchYear" validate:"required,gte=2000,lte=2100"`
	// Указатель отличает отсутствующее поле от легитимного нуля
	CGPACutoff  *float64          `json:"cgpaCutoff" validate:"required,gte=0,lte=10"`
	Skills      StringList        `json:"skills"`
	Salary      string            `json:"salary" validate:"required"`
	Deadline    time.Time         `json:"deadline" validate:"required"`
	TestDate    *time.Time        `json:"testDate"`
	Questions   []models.Question `json:"questions" validate:"omitempty,dive"`
	Duration    int               `json:"duration" validate:"omitempty,gt=0"`
}

// DriveResponse - публичное представление набора (для студентов)
type DriveResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"companyId"`
	CompanyName string     `json:"companyName"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	BatchYear   int        `json:"batchYear"`
	CGPACutoff  float64    `json:"cgpaCutoff"`
	Skills      []string   `json:"skills"`
	Salary      string     `json:"salary"`
	Deadline    time.Time  `json:"deadline"`
	TestDate    *time.Time `json:"testDate,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CompanyDriveResponse - набор глазами компании-владельца
type CompanyDriveResponse struct {
	DriveResponse
	ApplicantCount int64 `json:"applicantCount"`
}

// DriveTestResponse - тест набора без лишних полей
type DriveTestResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Questions []models.Question `json:"questions"`
	Duration  int               `json:"duration"`
}

// ToDriveResponse конвертирует модель набора в ответ API
func ToDriveResponse(d *models.Drive) *DriveResponse {
	return &DriveResponse{
		ID:          d.ID,
		CompanyID:   d.CompanyID,
		CompanyName: d.CompanyName,
		Title:       d.Title,
		Description: d.Description,
		BatchYear:   d.BatchYear,
		CGPACutoff:  d.CGPACutoff,
		Skills:      d.Skills,
		Salary:      d.Salary,
		Deadline:    d.Deadline,
		TestDate:    d.TestDate,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

// ToDriveTestResponse извлекает вопросы теста из модели
func ToDriveTestResponse(d *models.Drive) (*DriveTestResponse, error) {
	resp := &DriveTestResponse{
		ID:       d.ID,
		Title:    d.Title,
		Duration: d.Duration,
	}

	if len(d.Questions) > 0 {
		if err := json.Unmarshal(d.Questions, &resp.Questions); err != nil {
			return nil, err
		}
	}

	return resp, nil
}
