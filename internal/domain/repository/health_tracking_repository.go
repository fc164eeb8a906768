package repository

import (
	"healthconnect/internal/domain/entity"

	"gorm.io/gorm"
)

type HealthTrackingRepository interface {
	Create(db *gorm.DB, entry *entity.HealthTrackingEntry) error
	// FindAll expects db to already carry the caller's access-policy scope.
	FindAll(db *gorm.DB) ([]entity.HealthTrackingEntry, error)
	// FindRecent returns the newest entries up to limit.
	FindRecent(db *gorm.DB, limit int) ([]entity.HealthTrackingEntry, error)
}
