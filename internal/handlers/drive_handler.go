package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillgate_backend/internal/middleware"
	"skillgate_backend/internal/models"
	"skillgate_backend/internal/services"
	"skillgate_backend/internal/services/dto"
)

type DriveHandler struct {
	*BaseHandler
	driveService       services.DriveService
	applicationService services.ApplicationService
}

func NewDriveHandler(base *BaseHandler, driveService services.DriveService, applicationService services.ApplicationService) *DriveHandler {
	return &DriveHandler{
		BaseHandler:        base,
		driveService:       driveService,
		applicationService: applicationService,
	}
}

func (h *DriveHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Student routes
	drives := r.Group("/drives")
	drives.Use(middleware.AuthMiddleware())
	{
		drives.GET("", h.ListActiveDrives)
		drives.GET("/:driveId/test", h.GetDriveTest)
	}

	// Company routes
	company := r.Group("/drives")
	company.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany))
	{
		company.POST("", h.CreateDrive)
		company.GET("/my", h.ListMyDrives)
		company.PUT("/:driveId/close", h.CloseDrive)

		// Отклики по набору (для компании-владельца)
		company.GET("/:driveId/applications", h.ListDriveApplications)
	}
}

// ListActiveDrives - активные наборы для студентов
func (h *DriveHandler) ListActiveDrives(c *gin.Context) {
	drives, err := h.driveService.ListActiveDrives()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"drives": drives,
		"total":  len(drives),
	})
}

// GetDriveTest - встроенный тест набора
func (h *DriveHandler) GetDriveTest(c *gin.Context) {
	test, err := h.driveService.GetDriveTest(c.Param("driveId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, test)
}

// CreateDrive - создание набора компанией
func (h *DriveHandler) CreateDrive(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDriveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	drive, err := h.driveService.CreateDrive(companyID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, drive)
}

// ListMyDrives - наборы текущей компании со счетчиками откликов
func (h *DriveHandler) ListMyDrives(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	drives, err := h.driveService.ListCompanyDrives(companyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"drives": drives,
		"total":  len(drives),
	})
}

// CloseDrive - досрочное закрытие набора владельцем
func (h *DriveHandler) CloseDrive(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.driveService.CloseDrive(companyID, c.Param("driveId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Drive closed"})
}

// ListDriveApplications - отклики по набору для компании-владельца
func (h *DriveHandler) ListDriveApplications(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListDriveApplications(companyID, c.Param("driveId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}
