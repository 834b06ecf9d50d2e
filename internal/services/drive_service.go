package services

import (
	"encoding/json"

	"github.com/lib/pq"

	"skillgate_backend/internal/models"
	"skillgate_backend/internal/repositories"
	"skillgate_backend/internal/services/dto"
	"skillgate_backend/pkg/apperrors"
)

const defaultTestDuration = 60 // минут

type DriveService interface {
	CreateDrive(companyID string, req *dto.CreateDriveRequest) (*dto.DriveResponse, error)
	ListActiveDrives() ([]dto.DriveResponse, error)
	ListCompanyDrives(companyID string) ([]dto.CompanyDriveResponse, error)
	GetDriveTest(driveID string) (*dto.DriveTestResponse, error)
	CloseDrive(companyID, driveID string) error
}

type DriveServiceImpl struct {
	driveRepo       repositories.DriveRepository
	userRepo        repositories.UserRepository
	applicationRepo repositories.ApplicationRepository
}

func NewDriveService(
	driveRepo repositories.DriveRepository,
	userRepo repositories.UserRepository,
	applicationRepo repositories.ApplicationRepository,
) DriveService {
	return &DriveServiceImpl{
		driveRepo:       driveRepo,
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
	}
}

// CreateDrive - создание набора компанией.
// Доступно только одобренным компаниям; имя компании снимается
// в снапшот на момент создания.
func (s *DriveServiceImpl) CreateDrive(companyID string, req *dto.CreateDriveRequest) (*dto.DriveResponse, error) {
	company, err := s.userRepo.FindByID(companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if company.Role != models.UserRoleCompany {
		return nil, apperrors.ErrInvalidUserRole
	}
	if company.Status != models.UserStatusApproved {
		return nil, apperrors.ErrAccountNotApproved
	}

	duration := req.Duration
	if duration == 0 {
		duration = defaultTestDuration
	}

	drive := &models.Drive{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Title:       req.Title,
		Description: req.Description,
		BatchYear:   req.BatchYear,
		CGPACutoff:  *req.CGPACutoff,
		Skills:      pq.StringArray(req.Skills),
		Salary:      req.Salary,
		Deadline:    req.Deadline,
		TestDate:    req.TestDate,
		Duration:    duration,
		Status:      models.DriveStatusActive,
	}

	if len(req.Questions) > 0 {
		questions, err := json.Marshal(req.Questions)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		drive.Questions = questions
	}

	if err := s.driveRepo.Create(drive); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.ToDriveResponse(drive), nil
}

// ListActiveDrives - активные наборы с еще не прошедшим дедлайном
func (s *DriveServiceImpl) ListActiveDrives() ([]dto.DriveResponse, error) {
	drives, err := s.driveRepo.FindActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.DriveResponse, 0, len(drives))
	for i := range drives {
		result = append(result, *dto.ToDriveResponse(&drives[i]))
	}
	return result, nil
}

// ListCompanyDrives - наборы компании с количеством откликов по каждому
func (s *DriveServiceImpl) ListCompanyDrives(companyID string) ([]dto.CompanyDriveResponse, error) {
	drives, err := s.driveRepo.FindByCompany(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.CompanyDriveResponse, 0, len(drives))
	for i := range drives {
		count, err := s.applicationRepo.CountByDrive(drives[i].ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		result = append(result, dto.CompanyDriveResponse{
			DriveResponse:  *dto.ToDriveResponse(&drives[i]),
			ApplicantCount: count,
		})
	}
	return result, nil
}

// GetDriveTest - тест набора (только вопросы и длительность)
func (s *DriveServiceImpl) GetDriveTest(driveID string) (*dto.DriveTestResponse, error) {
	drive, err := s.driveRepo.FindByID(driveID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDriveNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if drive.Status != models.DriveStatusActive {
		return nil, apperrors.ErrDriveNotActive
	}

	resp, err := dto.ToDriveTestResponse(drive)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resp, nil
}

// CloseDrive - досрочное закрытие набора его владельцем
func (s *DriveServiceImpl) CloseDrive(companyID, driveID string) error {
	drive, err := s.driveRepo.FindByID(driveID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDriveNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if drive.CompanyID != companyID {
		return apperrors.ErrInsufficientPermissions
	}
	if drive.Status != models.DriveStatusActive {
		return apperrors.ErrDriveNotActive
	}

	if err := s.driveRepo.UpdateStatus(drive.ID, models.DriveStatusClosed); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
