package services

import (
	"time"

	"skillgate_backend/internal/email"
	"skillgate_backend/internal/logger"
	"skillgate_backend/internal/models"
	"skillgate_backend/internal/repositories"
	"skillgate_backend/internal/services/dto"
	"skillgate_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(studentID string, req *dto.ApplyRequest) (*dto.StudentApplicationResponse, error)
	ListStudentApplications(studentID string) ([]dto.StudentApplicationResponse, error)
	ListDriveApplications(companyID, driveID string) ([]dto.ApplicantResponse, error)
	UpdateStatus(companyID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicantResponse, error)
	CompanyStats(companyID string) (*dto.CompanyStatsResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	driveRepo       repositories.DriveRepository
	userRepo        repositories.UserRepository
	emailProvider   email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	driveRepo repositories.DriveRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		driveRepo:       driveRepo,
		userRepo:        userRepo,
		emailProvider:   emailProvider,
	}
}

// Apply - отклик студента на набор.
// Порядок проверок фиксирован: существование набора, активность и
// дедлайн, дубликат, одобрение аккаунта, проходной балл. CGPA равный
// порогу проходит.
func (s *ApplicationServiceImpl) Apply(studentID string, req *dto.ApplyRequest) (*dto.StudentApplicationResponse, error) {
	drive, err := s.driveRepo.FindByID(req.DriveID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDriveNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if drive.Status != models.DriveStatusActive || time.Now().After(drive.Deadline) {
		return nil, apperrors.ErrDriveNotActive
	}

	if _, err := s.applicationRepo.FindByStudentAndDrive(studentID, drive.ID); err == nil {
		return nil, apperrors.ErrAlreadyApplied
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if student.Role != models.UserRoleStudent {
		return nil, apperrors.ErrInvalidUserRole
	}
	if student.Status != models.UserStatusApproved {
		return nil, apperrors.ErrAccountNotApproved
	}
	if student.CGPA < drive.CGPACutoff {
		return nil, apperrors.ErrNotEligible
	}

	application := &models.Application{
		StudentID: student.ID,
		DriveID:   drive.ID,
		Status:    models.ApplicationStatusPending,
		AppliedAt: time.Now(),
	}

	if err := s.applicationRepo.Create(application); err != nil {
		// Гонка двух одновременных apply упирается в уникальный индекс
		if apperrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	application.Drive = *drive
	return dto.ToStudentApplicationResponse(application), nil
}

// ListStudentApplications - отклики студента с данными наборов
func (s *ApplicationServiceImpl) ListStudentApplications(studentID string) ([]dto.StudentApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByStudent(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.StudentApplicationResponse, 0, len(applications))
	for i := range applications {
		result = append(result, *dto.ToStudentApplicationResponse(&applications[i]))
	}
	return result, nil
}

// ListDriveApplications - отклики по набору, только для компании-владельца
func (s *ApplicationServiceImpl) ListDriveApplications(companyID, driveID string) ([]dto.ApplicantResponse, error) {
	drive, err := s.driveRepo.FindByID(driveID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDriveNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if drive.CompanyID != companyID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applications, err := s.applicationRepo.FindByDrive(driveID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.ApplicantResponse, 0, len(applications))
	for i := range applications {
		result = append(result, *dto.ToApplicantResponse(&applications[i]))
	}
	return result, nil
}

// UpdateStatus - смена статуса отклика компанией-владельцем набора.
// Повторная установка того же статуса не является ошибкой.
func (s *ApplicationServiceImpl) UpdateStatus(companyID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicantResponse, error) {
	status := models.ApplicationStatus(req.Status)
	if !models.IsValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidStatus("application", "Invalid application status")
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	drive, err := s.driveRepo.FindByID(application.DriveID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if drive.CompanyID != companyID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.applicationRepo.UpdateStatus(application.ID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = status

	s.notifyStudent(application, drive)

	return dto.ToApplicantResponse(application), nil
}

// CompanyStats - сводка по наборам и откликам компании
func (s *ApplicationServiceImpl) CompanyStats(companyID string) (*dto.CompanyStatsResponse, error) {
	driveIDs, err := s.driveRepo.IDsByCompany(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalApplications, err := s.applicationRepo.CountByDrives(driveIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CompanyStatsResponse{
		TotalDrives:       int64(len(driveIDs)),
		TotalApplications: totalApplications,
	}, nil
}

// notifyStudent асинхронно шлет студенту письмо о смене статуса
func (s *ApplicationServiceImpl) notifyStudent(application *models.Application, drive *models.Drive) {
	student, err := s.userRepo.FindByID(application.StudentID)
	if err != nil {
		logger.WithError(err).Warn("Не удалось найти студента для уведомления", "student_id", application.StudentID)
		return
	}

	go func(to, title string, status models.ApplicationStatus) {
		if err := s.emailProvider.SendApplicationStatus(to, title, status); err != nil {
			logger.WithError(err).Warn("Не удалось отправить уведомление о статусе отклика", "to", to)
		}
	}(student.Email, drive.Title, application.Status)
}
