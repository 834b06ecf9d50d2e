package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillgate_backend/internal/middleware"
	"skillgate_backend/internal/services"
	"skillgate_backend/internal/services/dto"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/stats", h.Stats)
		admin.GET("/pending-users", h.ListPendingUsers)
		admin.PUT("/users/:userId/status", h.SetUserStatus)
	}
}

// Stats - сводка для дашборда
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListPendingUsers - пользователи, ожидающие решения
func (h *AdminHandler) ListPendingUsers(c *gin.Context) {
	var query dto.PendingUsersQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	users, err := h.adminService.ListPendingUsers(query.Role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

// SetUserStatus - решение по аккаунту (approve / reject)
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.adminService.SetUserStatus(c.Param("userId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
