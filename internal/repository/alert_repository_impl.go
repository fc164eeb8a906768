package repository

import (
	"healthconnect/internal/domain/entity"
	domainRepo "healthconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type alertRepository struct{}

func NewAlertRepository() domainRepo.AlertRepository {
	return &alertRepository{}
}

func (r *alertRepository) Create(db *gorm.DB, alert *entity.Alert) error {
	return db.Create(alert).Error
}

func (r *alertRepository) FindAll(db *gorm.DB) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := db.Order("created_at DESC").Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) CountUnread(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Alert{}).
		Where("patient_id = ? AND is_read = ?", patientID, false).
		Count(&count).Error
	return count, err
}

func (r *alertRepository) MarkAllRead(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Alert{}).
		Where("patient_id = ? AND is_read = ?", patientID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
