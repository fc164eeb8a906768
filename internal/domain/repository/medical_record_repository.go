package repository

import (
	"healthconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error)
	// FindAll expects db to already carry the caller's access-policy scope.
	FindAll(db *gorm.DB) ([]entity.MedicalRecord, error)
}
