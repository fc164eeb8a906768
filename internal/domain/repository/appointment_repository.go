package repository

import (
	"time"

	"healthconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appt *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindAll expects db to already carry the caller's access-policy scope.
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	// UpdateDetails changes appt_time/notes only while the row is still
	// pending. Returns affected rows: 0 means the status moved on.
	UpdateDetails(db *gorm.DB, id uuid.UUID, apptTime time.Time, notes string) (int64, error)
	// UpdateStatus performs the transition as one conditional update keyed
	// by id and the expected current status. Returns affected rows.
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	// CountByUser counts appointments referencing the user as patient or
	// doctor; used by the user-deletion integrity guard.
	CountByUser(db *gorm.DB, userID uuid.UUID) (int64, error)
	// CountShared counts non-cancelled appointments between a patient and a
	// doctor; gates medical record and prescription creation.
	CountShared(db *gorm.DB, patientID, doctorID uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
