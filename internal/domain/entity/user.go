package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID     int       `gorm:"not null;index" json:"role_id"`
	HospitalID *int      `gorm:"index" json:"hospital_id,omitempty"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	FullName   string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CitizenID  string    `gorm:"type:varchar(13)" json:"citizen_id,omitempty"`
	AvatarURL  string    `gorm:"type:text" json:"avatar_url,omitempty"`
	IsActive   bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role     Role      `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsPatient reports whether the user holds the patient role.
func (u *User) IsPatient() bool {
	return u.RoleID == RoleIDPatient
}

// IsDoctor reports whether the user holds the doctor role.
func (u *User) IsDoctor() bool {
	return u.RoleID == RoleIDDoctor
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.RoleID == RoleIDAdmin
}

// AssignHospital sets the user's hospital affiliation. Re-assigning the same
// hospital overwrites the reference, so repeated assignment is idempotent.
func (u *User) AssignHospital(hospitalID int) {
	u.HospitalID = &hospitalID
}

// UnassignHospital clears the user's hospital affiliation.
func (u *User) UnassignHospital() {
	u.HospitalID = nil
}
