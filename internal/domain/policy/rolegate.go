package policy

import (
	"github.com/google/uuid"

	"healthconnect/internal/domain/entity"
)

// EntityType identifies a record type for access decisions
type EntityType string

const (
	EntityAppointment    EntityType = "appointment"
	EntityMedicalRecord  EntityType = "medical_record"
	EntityPrescription   EntityType = "prescription"
	EntityHealthTracking EntityType = "health_tracking"
	EntityAlert          EntityType = "alert"
	EntityUser           EntityType = "user"
	EntityHospital       EntityType = "hospital"
)

// Action identifies a mutation for access decisions
type Action string

const (
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionMarkRead Action = "mark_read"
)

// Ownership holds the owner references stored on a record. A zero UUID means
// the record type has no owner of that kind.
type Ownership struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
}

// CanView decides whether an actor with the given role may see a single
// record. The role is the sole authorization axis; unknown roles are denied
// everything. Callers scoping list queries use ScopeFor instead, so that
// filtering happens before any rows leave storage.
func CanView(roleID int, entityType EntityType, actorID uuid.UUID, own Ownership) bool {
	switch roleID {
	case entity.RoleIDPatient:
		switch entityType {
		case EntityAppointment, EntityMedicalRecord, EntityPrescription,
			EntityHealthTracking, EntityAlert:
			return own.PatientID == actorID
		case EntityHospital:
			// Patients browse hospitals and their doctors when booking.
			return true
		case EntityUser:
			return own.PatientID == actorID
		}
	case entity.RoleIDDoctor:
		switch entityType {
		case EntityAppointment, EntityMedicalRecord, EntityPrescription:
			return own.DoctorID == actorID
		case EntityHospital:
			return true
		case EntityUser:
			return own.DoctorID == actorID
		}
	case entity.RoleIDAdmin:
		switch entityType {
		case EntityUser, EntityHospital, EntityAppointment:
			return true
		}
	}
	return false
}

// CanMutate decides whether an actor with the given role may perform an
// action on a record. Appointment status transitions additionally go through
// the lifecycle table; this gate only answers the role/ownership question.
func CanMutate(roleID int, entityType EntityType, action Action, actorID uuid.UUID, own Ownership) bool {
	switch roleID {
	case entity.RoleIDPatient:
		switch entityType {
		case EntityAppointment:
			switch action {
			case ActionCreate:
				return own.PatientID == actorID
			case ActionUpdate, ActionCancel:
				return own.PatientID == actorID
			}
		case EntityHealthTracking:
			return action == ActionCreate && own.PatientID == actorID
		case EntityAlert:
			return action == ActionMarkRead && own.PatientID == actorID
		}
	case entity.RoleIDDoctor:
		switch entityType {
		case EntityAppointment:
			return action == ActionConfirm && own.DoctorID == actorID
		case EntityMedicalRecord, EntityPrescription:
			return action == ActionCreate && own.DoctorID == actorID
		}
	case entity.RoleIDAdmin:
		switch entityType {
		case EntityHospital:
			switch action {
			case ActionCreate, ActionUpdate, ActionDelete:
				return true
			}
		case EntityUser:
			switch action {
			case ActionUpdate, ActionDelete:
				return true
			}
		}
	}
	return false
}
