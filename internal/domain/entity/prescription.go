package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription represents a medication prescribed to a patient by a doctor
type Prescription struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"doctor_id"`
	MedicationName string      `gorm:"type:varchar(255);not null" json:"medication_name"`
	Dosage         string      `gorm:"type:varchar(100);not null" json:"dosage"`
	Instructions   string      `gorm:"type:text" json:"instructions,omitempty"`
	Attachments    Attachments `gorm:"type:jsonb" json:"attachments,omitempty"`
	PrescribedAt   time.Time   `gorm:"autoCreateTime;index" json:"prescribed_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
