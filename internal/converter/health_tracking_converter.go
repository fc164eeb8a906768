package converter

import (
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
)

// VitalsToResponse converts a HealthTrackingEntry entity to its DTO
func VitalsToResponse(entry *entity.HealthTrackingEntry) *dto.VitalsResponse {
	if entry == nil {
		return nil
	}

	return &dto.VitalsResponse{
		ID:          entry.ID,
		PatientID:   entry.PatientID,
		Pulse:       entry.Pulse,
		Systolic:    entry.Systolic,
		Diastolic:   entry.Diastolic,
		Temperature: entry.Temperature,
		SpO2:        entry.SpO2,
		Steps:       entry.Steps,
		Summary:     entry.Summary,
		Details:     entry.Details,
		CreatedAt:   entry.CreatedAt,
	}
}

// VitalsToResponses converts a slice of HealthTrackingEntry entities to DTOs
func VitalsToResponses(entries []entity.HealthTrackingEntry) []dto.VitalsResponse {
	responses := make([]dto.VitalsResponse, len(entries))
	for i, entry := range entries {
		resp := VitalsToResponse(&entry)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
