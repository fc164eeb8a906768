package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDPatient  = 1
	RoleIDDoctor   = 2
	RoleIDAdmin    = 3
	RoleIDPharmacy = 4
	RoleIDStaff    = 5
)

// RoleNames constants
const (
	RolePatient  = "patient"
	RoleDoctor   = "doctor"
	RoleAdmin    = "admin"
	RolePharmacy = "pharmacy"
	RoleStaff    = "staff"
)

// RoleName maps a role ID to its name. Returns empty string for unknown IDs.
func RoleName(roleID int) string {
	switch roleID {
	case RoleIDPatient:
		return RolePatient
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDPharmacy:
		return RolePharmacy
	case RoleIDStaff:
		return RoleStaff
	default:
		return ""
	}
}
