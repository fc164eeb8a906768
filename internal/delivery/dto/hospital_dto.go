package dto

import "time"

// Request DTOs

type CreateHospitalRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Address string `json:"address" validate:"omitempty,max=2000"`
}

type UpdateHospitalRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Address string `json:"address" validate:"omitempty,max=2000"`
}

type AssignDoctorRequest struct {
	DoctorID string `json:"doctor_id" validate:"required,uuid"`
}

// Response DTOs

type HospitalResponse struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Address   string         `json:"address,omitempty"`
	Doctors   []UserResponse `json:"doctors,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
