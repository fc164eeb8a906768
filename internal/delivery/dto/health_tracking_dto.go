package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RecordVitalsRequest struct {
	Pulse       int     `json:"pulse" validate:"required,min=1,max=300"`
	Systolic    int     `json:"systolic" validate:"required,min=1,max=300"`
	Diastolic   int     `json:"diastolic" validate:"required,min=1,max=300"`
	Temperature float64 `json:"temperature" validate:"required,gte=25,lte=45"`
	SpO2        int     `json:"spo2" validate:"required,min=1,max=100"`
	Steps       int     `json:"steps" validate:"omitempty,min=0"`
}

// Response DTOs

type VitalsResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	Pulse       int       `json:"pulse"`
	Systolic    int       `json:"systolic"`
	Diastolic   int       `json:"diastolic"`
	Temperature float64   `json:"temperature"`
	SpO2        int       `json:"spo2"`
	Steps       int       `json:"steps"`
	Summary     string    `json:"summary"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type VitalsListResponse struct {
	Entries []VitalsResponse `json:"entries"`
	Total   int              `json:"total"`
}
