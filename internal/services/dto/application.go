package dto

import (
	"time"

	"skillgate_backend/internal/models"
)

// ApplyRequest - отклик студента на набор
type ApplyRequest struct {
	DriveID string `json:"driveId" validate:"required,uuid"`
}

// UpdateApplicationStatusRequest - смена статуса отклика компанией
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

// StudentApplicationResponse - отклик глазами студента (с данными набора)
type StudentApplicationResponse struct {
	ID        string         `json:"id"`
	Status    string         `json:"status"`
	AppliedAt time.Time      `json:"appliedAt"`
	Drive     *DriveResponse `json:"drive,omitempty"`
}

// ApplicantResponse - отклик глазами компании (с данными студента)
type ApplicantResponse struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	AppliedAt time.Time         `json:"appliedAt"`
	Student   *ApplicantProfile `json:"student,omitempty"`
}

// ApplicantProfile - срез профиля студента для компании
type ApplicantProfile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	CollegeID      string   `json:"collegeId,omitempty"`
	Branch         string   `json:"branch,omitempty"`
	GraduationYear int      `json:"graduationYear,omitempty"`
	CGPA           float64  `json:"cgpa"`
	Skills         []string `json:"skills,omitempty"`
	Resume         string   `json:"resume,omitempty"`
}

// CompanyStatsResponse - сводка по компании
type CompanyStatsResponse struct {
	TotalDrives       int64 `json:"totalDrives"`
	TotalApplications int64 `json:"totalApplications"`
}

// ToStudentApplicationResponse конвертирует отклик для студента
func ToStudentApplicationResponse(a *models.Application) *StudentApplicationResponse {
	resp := &StudentApplicationResponse{
		ID:        a.ID,
		Status:    string(a.Status),
		AppliedAt: a.AppliedAt,
	}
	if a.Drive.ID != "" {
		resp.Drive = ToDriveResponse(&a.Drive)
	}
	return resp
}

// ToApplicantResponse конвертирует отклик для компании
func ToApplicantResponse(a *models.Application) *ApplicantResponse {
	resp := &ApplicantResponse{
		ID:        a.ID,
		Status:    string(a.Status),
		AppliedAt: a.AppliedAt,
	}
	if a.Student.ID != "" {
		resp.Student = &ApplicantProfile{
			ID:             a.Student.ID,
			Name:           a.Student.Name,
			Email:          a.Student.Email,
			CollegeID:      a.Student.CollegeID,
			Branch:         a.Student.Branch,
			GraduationYear: a.Student.GraduationYear,
			CGPA:           a.Student.CGPA,
			Skills:         a.Student.Skills,
			Resume:         a.Student.Resume,
		}
	}
	return resp
}
