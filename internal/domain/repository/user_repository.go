package repository

import (
	"healthconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindDoctorsByHospital(db *gorm.DB, hospitalID int) ([]entity.User, error)
	FindUnassignedDoctors(db *gorm.DB) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, id uuid.UUID) error
	Count(db *gorm.DB) (int64, error)
	CountByRole(db *gorm.DB, roleID int) (int64, error)
}
