package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID   uuid.UUID `json:"doctor_id" validate:"required"`
	HospitalID int       `json:"hospital_id" validate:"required,min=1"`
	ApptTime   string    `json:"appt_time" validate:"required"` // RFC3339
	Notes      string    `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateAppointmentRequest struct {
	ApptTime string `json:"appt_time" validate:"required"` // RFC3339
	Notes    string `json:"notes" validate:"omitempty,max=2000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID         uuid.UUID         `json:"id"`
	PatientID  uuid.UUID         `json:"patient_id"`
	DoctorID   uuid.UUID         `json:"doctor_id"`
	HospitalID int               `json:"hospital_id"`
	ApptTime   time.Time         `json:"appt_time"`
	Notes      string            `json:"notes,omitempty"`
	Status     string            `json:"status"`
	Patient    *UserResponse     `json:"patient,omitempty"`
	Doctor     *UserResponse     `json:"doctor,omitempty"`
	Hospital   *HospitalResponse `json:"hospital,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
