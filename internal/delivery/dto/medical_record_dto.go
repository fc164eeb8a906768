package dto

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentUpload carries one file inline, base64 encoded.
type AttachmentUpload struct {
	Filename string `json:"filename" validate:"required,max=255"`
	Data     string `json:"data" validate:"required"`
}

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID   uuid.UUID          `json:"patient_id" validate:"required"`
	VisitDate   string             `json:"visit_date" validate:"required"` // YYYY-MM-DD
	Diagnosis   string             `json:"diagnosis" validate:"required,max=5000"`
	Notes       string             `json:"notes" validate:"omitempty,max=5000"`
	Attachments []AttachmentUpload `json:"attachments" validate:"omitempty,max=5,dive"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID          uuid.UUID     `json:"id"`
	PatientID   uuid.UUID     `json:"patient_id"`
	DoctorID    uuid.UUID     `json:"doctor_id"`
	VisitDate   time.Time     `json:"visit_date"`
	Diagnosis   string        `json:"diagnosis"`
	Notes       string        `json:"notes,omitempty"`
	Attachments []string      `json:"attachments,omitempty"`
	Patient     *UserResponse `json:"patient,omitempty"`
	Doctor      *UserResponse `json:"doctor,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
