package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// UserIDContextKey - ключ, по которому хранится ID пользователя в gin.Context
const UserIDContextKey = contextKey("userID")

// RoleContextKey - ключ, по которому хранится роль пользователя в gin.Context
const RoleContextKey = contextKey("role")
