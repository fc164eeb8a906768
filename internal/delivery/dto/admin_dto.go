package dto

// Request DTOs

type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Phone    string `json:"phone" validate:"omitempty,min=8,max=20"`
	RoleID   int    `json:"role_id" validate:"required,min=1,max=5"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

// Response DTOs

type DashboardStatsResponse struct {
	TotalUsers        int64 `json:"total_users"`
	TotalPatients     int64 `json:"total_patients"`
	TotalDoctors      int64 `json:"total_doctors"`
	TotalHospitals    int64 `json:"total_hospitals"`
	TotalAppointments int64 `json:"total_appointments"`
}
