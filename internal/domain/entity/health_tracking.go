package entity

import (
	"time"

	"github.com/google/uuid"
)

// HealthTrackingEntry represents a set of vital-sign readings recorded by a
// patient. Summary and Details are produced by the classifier when the entry
// is created and are never recomputed, so stored history keeps the labels it
// was given at insert time.
type HealthTrackingEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Pulse       int       `gorm:"not null" json:"pulse"`
	Systolic    int       `gorm:"not null" json:"systolic"`
	Diastolic   int       `gorm:"not null" json:"diastolic"`
	Temperature float64   `gorm:"type:numeric(4,1);not null" json:"temperature"`
	SpO2        int       `gorm:"column:spo2;not null" json:"spo2"`
	Steps       int       `gorm:"default:0" json:"steps"`
	Summary     string    `gorm:"type:varchar(50);not null" json:"summary"`
	Details     string    `gorm:"type:text" json:"details"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (HealthTrackingEntry) TableName() string {
	return "health_tracking"
}
