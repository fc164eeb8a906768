package repository

import (
	"healthconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	// FindAll expects db to already carry the caller's access-policy scope.
	FindAll(db *gorm.DB) ([]entity.Prescription, error)
}
