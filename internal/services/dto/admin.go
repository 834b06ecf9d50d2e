package dto

// UpdateUserStatusRequest - решение админа по аккаунту
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,is-user-status"`
}

// PendingUsersQuery - фильтр списка ожидающих одобрения
type PendingUsersQuery struct {
	Role string `form:"role" validate:"omitempty,is-user-role"`
}

// AdminStatsResponse - сводка для дашборда админа
type AdminStatsResponse struct {
	TotalCompanies   int64 `json:"totalCompanies"`
	TotalStudents    int64 `json:"totalStudents"`
	PendingApprovals int64 `json:"pendingApprovals"`
}
