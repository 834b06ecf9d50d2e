package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillgate_backend/internal/middleware"
	"skillgate_backend/internal/models"
	"skillgate_backend/internal/services"
	"skillgate_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Student routes
	student := r.Group("/applications")
	student.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleStudent))
	{
		student.POST("", h.Apply)
		student.GET("/my", h.ListMyApplications)
	}

	// Company routes
	company := r.Group("/applications")
	company.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany))
	{
		company.PUT("/:applicationId/status", h.UpdateStatus)
		company.GET("/stats", h.CompanyStats)
	}
}

// Apply - отклик студента на набор
func (h *ApplicationHandler) Apply(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(studentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListMyApplications - отклики текущего студента
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListStudentApplications(studentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}

// UpdateStatus - смена статуса отклика компанией
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(companyID, c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// CompanyStats - сводка по наборам и откликам компании
func (h *ApplicationHandler) CompanyStats(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.applicationService.CompanyStats(companyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
