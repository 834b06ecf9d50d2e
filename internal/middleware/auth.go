package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillgate_backend/internal/auth"
	"skillgate_backend/internal/logger"
	"skillgate_backend/internal/models"
	"skillgate_backend/pkg/contextkeys"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Сохраняем claims в контекст запроса
		c.Set(string(contextkeys.UserIDContextKey), claims.UserID)
		c.Set(string(contextkeys.RoleContextKey), claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware - middleware ограничения по одной роли
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireRoles - middleware для проверки нескольких возможных ролей
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		if !roleSet[GetUserRole(c)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// AdminMiddleware - доступ только для админов
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(models.UserRoleAdmin)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(string(contextkeys.UserIDContextKey))
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserRole извлекает роль пользователя из контекста
func GetUserRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get(string(contextkeys.RoleContextKey))
	if !exists {
		return ""
	}

	switch role := roleVal.(type) {
	case models.UserRole:
		return role
	case string:
		return models.UserRole(role)
	default:
		return ""
	}
}
