package converter

import (
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:          record.ID,
		PatientID:   record.PatientID,
		DoctorID:    record.DoctorID,
		VisitDate:   record.VisitDate,
		Diagnosis:   record.Diagnosis,
		Notes:       record.Notes,
		Attachments: record.Attachments,
		CreatedAt:   record.CreatedAt,
	}

	if record.Patient.ID != uuid.Nil {
		response.Patient = UserToResponse(&record.Patient)
	}
	if record.Doctor.ID != uuid.Nil {
		response.Doctor = UserToResponse(&record.Doctor)
	}

	return response
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		resp := MedicalRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
