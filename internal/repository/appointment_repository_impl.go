package repository

import (
	"errors"
	"time"

	"healthconnect/internal/domain/entity"
	domainRepo "healthconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appt *entity.Appointment) error {
	return db.Create(appt).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").Preload("Hospital").
		Where("id = ?", id).
		First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").Preload("Hospital").
		Order("appt_time DESC").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

// UpdateDetails edits appt_time/notes only while the appointment is still
// pending. Ownership is checked by the caller; the status condition keeps
// the edit atomic against a concurrent transition.
func (r *appointmentRepository) UpdateDetails(db *gorm.DB, id uuid.UUID, apptTime time.Time, notes string) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusPending).
		Updates(map[string]interface{}{
			"appt_time": apptTime,
			"notes":     notes,
		})
	return result.RowsAffected, result.Error
}

// UpdateStatus performs a lifecycle transition as a single conditional
// update. Returns affected rows: 0 = the row was no longer in the expected
// status (lost race or stale client).
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByUser(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ? OR doctor_id = ?", userID, userID).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountShared(db *gorm.DB, patientID, doctorID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ? AND doctor_id = ? AND status != ?",
			patientID, doctorID, entity.AppointmentStatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}
