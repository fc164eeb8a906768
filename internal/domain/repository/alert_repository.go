package repository

import (
	"healthconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertRepository interface {
	Create(db *gorm.DB, alert *entity.Alert) error
	// FindAll expects db to already carry the caller's access-policy scope;
	// rows come back newest first.
	FindAll(db *gorm.DB) ([]entity.Alert, error)
	CountUnread(db *gorm.DB, patientID uuid.UUID) (int64, error)
	// MarkAllRead persists the read flag on every unread alert owned by the
	// patient. Returns the number of alerts flipped.
	MarkAllRead(db *gorm.DB, patientID uuid.UUID) (int64, error)
}
