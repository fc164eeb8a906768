package converter

import (
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appt *entity.Appointment) *dto.AppointmentResponse {
	if appt == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:         appt.ID,
		PatientID:  appt.PatientID,
		DoctorID:   appt.DoctorID,
		HospitalID: appt.HospitalID,
		ApptTime:   appt.ApptTime,
		Notes:      appt.Notes,
		Status:     string(appt.Status),
		CreatedAt:  appt.CreatedAt,
		UpdatedAt:  appt.UpdatedAt,
	}

	// Include related records if preloaded
	if appt.Patient.ID != uuid.Nil {
		response.Patient = UserToResponse(&appt.Patient)
	}
	if appt.Doctor.ID != uuid.Nil {
		response.Doctor = UserToResponse(&appt.Doctor)
	}
	if appt.Hospital.ID != 0 {
		response.Hospital = HospitalToResponse(&appt.Hospital)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appts []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appts))
	for i, appt := range appts {
		resp := AppointmentToResponse(&appt)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
