package policy

import (
	"github.com/google/uuid"

	"healthconnect/internal/domain/entity"
)

// transitions is the appointment lifecycle table. Cancelled and completed
// are terminal: no outgoing transitions.
var transitions = map[entity.AppointmentStatus][]entity.AppointmentStatus{
	entity.AppointmentStatusPending: {
		entity.AppointmentStatusConfirmed,
		entity.AppointmentStatusCancelled,
	},
	entity.AppointmentStatusConfirmed: {
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled,
	},
}

// CanTransition reports whether the lifecycle table allows moving an
// appointment from one status to another.
func CanTransition(from, to entity.AppointmentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AuthorizeTransition checks both the lifecycle table and who may trigger
// the transition: only the assigned doctor confirms, only the owning patient
// cancels. Completion has no API trigger; its transition is representable
// but never authorized here.
func AuthorizeTransition(roleID int, actorID uuid.UUID, appt *entity.Appointment, to entity.AppointmentStatus) error {
	if !CanTransition(appt.Status, to) {
		return ErrInvalidTransition
	}

	switch to {
	case entity.AppointmentStatusConfirmed:
		if roleID != entity.RoleIDDoctor || appt.DoctorID != actorID {
			return ErrPermissionDenied
		}
	case entity.AppointmentStatusCancelled:
		if roleID != entity.RoleIDPatient || appt.PatientID != actorID {
			return ErrPermissionDenied
		}
	default:
		return ErrPermissionDenied
	}

	return nil
}

// CanEditDetails reports whether appt_time and notes may still be changed:
// only while pending, and only by the owning patient.
func CanEditDetails(roleID int, actorID uuid.UUID, appt *entity.Appointment) bool {
	return appt.IsPending() &&
		roleID == entity.RoleIDPatient &&
		appt.PatientID == actorID
}
