package policy

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope narrows a list query to the rows the actor is allowed to see
type Scope func(*gorm.DB) *gorm.DB

// DenyAll yields an empty result set for unauthorized list reads. Denied
// lists come back empty rather than erroring, so denial is expressed as a
// predicate that matches nothing.
func DenyAll(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// Unrestricted leaves the query unscoped
func Unrestricted(db *gorm.DB) *gorm.DB {
	return db
}

// ScopeFor builds the filter predicate every list/read query for the given
// entity type must apply before returning rows. Patients get only the
// patient-id branch, doctors only the doctor-id branch, admins an
// unrestricted predicate where the policy table grants full read access.
// The decision is probed through CanView so list scoping and single-record
// visibility can never drift apart.
func ScopeFor(roleID int, actorID uuid.UUID, entityType EntityType) Scope {
	// Ownership that matches nobody: if the role can still view, its read
	// access does not hinge on ownership at all.
	foreign := Ownership{PatientID: uuid.New(), DoctorID: uuid.New()}
	if CanView(roleID, entityType, actorID, foreign) {
		return Unrestricted
	}

	switch entityType {
	case EntityAppointment, EntityMedicalRecord, EntityPrescription,
		EntityHealthTracking, EntityAlert:
		// Owner-scoped record types carry patient_id/doctor_id columns.
		if CanView(roleID, entityType, actorID, Ownership{PatientID: actorID}) {
			return func(db *gorm.DB) *gorm.DB {
				return db.Where("patient_id = ?", actorID)
			}
		}
		if CanView(roleID, entityType, actorID, Ownership{DoctorID: actorID}) {
			return func(db *gorm.DB) *gorm.DB {
				return db.Where("doctor_id = ?", actorID)
			}
		}
	}

	return DenyAll
}
