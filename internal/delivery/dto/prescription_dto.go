package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePrescriptionRequest struct {
	PatientID      uuid.UUID          `json:"patient_id" validate:"required"`
	MedicationName string             `json:"medication_name" validate:"required,max=255"`
	Dosage         string             `json:"dosage" validate:"required,max=100"`
	Instructions   string             `json:"instructions" validate:"omitempty,max=5000"`
	Attachments    []AttachmentUpload `json:"attachments" validate:"omitempty,max=5,dive"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID             uuid.UUID     `json:"id"`
	PatientID      uuid.UUID     `json:"patient_id"`
	DoctorID       uuid.UUID     `json:"doctor_id"`
	MedicationName string        `json:"medication_name"`
	Dosage         string        `json:"dosage"`
	Instructions   string        `json:"instructions,omitempty"`
	Attachments    []string      `json:"attachments,omitempty"`
	Patient        *UserResponse `json:"patient,omitempty"`
	Doctor         *UserResponse `json:"doctor,omitempty"`
	PrescribedAt   time.Time     `json:"prescribed_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
