package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord represents an electronic medical record entry.
// Records are created by a doctor and are immutable afterwards.
type MedicalRecord struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"doctor_id"`
	VisitDate   time.Time   `gorm:"not null;index" json:"visit_date"`
	Diagnosis   string      `gorm:"type:text;not null" json:"diagnosis"`
	Notes       string      `gorm:"type:text" json:"notes,omitempty"`
	Attachments Attachments `gorm:"type:jsonb" json:"attachments,omitempty"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
