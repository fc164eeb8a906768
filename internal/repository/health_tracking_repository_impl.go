package repository

import (
	"healthconnect/internal/domain/entity"
	domainRepo "healthconnect/internal/domain/repository"

	"gorm.io/gorm"
)

type healthTrackingRepository struct{}

func NewHealthTrackingRepository() domainRepo.HealthTrackingRepository {
	return &healthTrackingRepository{}
}

func (r *healthTrackingRepository) Create(db *gorm.DB, entry *entity.HealthTrackingEntry) error {
	return db.Create(entry).Error
}

func (r *healthTrackingRepository) FindAll(db *gorm.DB) ([]entity.HealthTrackingEntry, error) {
	var entries []entity.HealthTrackingEntry
	err := db.Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *healthTrackingRepository) FindRecent(db *gorm.DB, limit int) ([]entity.HealthTrackingEntry, error) {
	var entries []entity.HealthTrackingEntry
	err := db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
