package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alert types
const (
	AlertTypeVitals      = "vitals"
	AlertTypeAppointment = "appointment"
	AlertTypeSystem      = "system"
)

// Alert represents a notification pushed to a patient
type Alert struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Type      string    `gorm:"type:varchar(50);not null" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Alert) TableName() string {
	return "alerts"
}
