package converter

import (
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
)

// AlertToResponse converts an Alert entity to AlertResponse DTO
func AlertToResponse(alert *entity.Alert) *dto.AlertResponse {
	if alert == nil {
		return nil
	}

	return &dto.AlertResponse{
		ID:        alert.ID,
		PatientID: alert.PatientID,
		Type:      alert.Type,
		Message:   alert.Message,
		IsRead:    alert.IsRead,
		CreatedAt: alert.CreatedAt,
	}
}

// AlertsToResponses converts a slice of Alert entities to DTOs
func AlertsToResponses(alerts []entity.Alert) []dto.AlertResponse {
	responses := make([]dto.AlertResponse, len(alerts))
	for i, alert := range alerts {
		resp := AlertToResponse(&alert)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
