package converter

import (
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// PrescriptionToResponse converts a Prescription entity to its DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:             prescription.ID,
		PatientID:      prescription.PatientID,
		DoctorID:       prescription.DoctorID,
		MedicationName: prescription.MedicationName,
		Dosage:         prescription.Dosage,
		Instructions:   prescription.Instructions,
		Attachments:    prescription.Attachments,
		PrescribedAt:   prescription.PrescribedAt,
	}

	if prescription.Patient.ID != uuid.Nil {
		response.Patient = UserToResponse(&prescription.Patient)
	}
	if prescription.Doctor.ID != uuid.Nil {
		response.Doctor = UserToResponse(&prescription.Doctor)
	}

	return response
}

// PrescriptionsToResponses converts a slice of Prescription entities to DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		resp := PrescriptionToResponse(&prescription)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
