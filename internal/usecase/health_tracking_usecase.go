package usecase

import (
	"context"
	"fmt"

	"healthconnect/internal/converter"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/policy"
	"healthconnect/internal/domain/repository"
	"healthconnect/internal/domain/vitals"
	"healthconnect/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HealthTrackingUsecase interface {
	RecordVitals(ctx context.Context, req *dto.RecordVitalsRequest) (*dto.VitalsResponse, error)
	GetMyVitals(ctx context.Context) (*dto.VitalsListResponse, error)
	GetLatestVitals(ctx context.Context) (*dto.VitalsResponse, error)
}

type healthTrackingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	trackingRepo repository.HealthTrackingRepository
	alertRepo    repository.AlertRepository
	alertStream  *service.AlertStream
	auditService service.AuditService
}

func NewHealthTrackingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	trackingRepo repository.HealthTrackingRepository,
	alertRepo repository.AlertRepository,
	alertStream *service.AlertStream,
	auditService service.AuditService,
) HealthTrackingUsecase {
	return &healthTrackingUsecase{
		db:           db,
		log:          log,
		trackingRepo: trackingRepo,
		alertRepo:    alertRepo,
		alertStream:  alertStream,
		auditService: auditService,
	}
}

// RecordVitals classifies the reading and persists entry, summary and
// details in one transaction. A major abnormal reading also inserts a
// vitals alert for the patient.
func (u *healthTrackingUsecase) RecordVitals(ctx context.Context, req *dto.RecordVitalsRequest) (*dto.VitalsResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	own := policy.Ownership{PatientID: userID}
	if !policy.CanMutate(roleID, policy.EntityHealthTracking, policy.ActionCreate, userID, own) {
		return nil, policy.ErrPermissionDenied
	}

	result := vitals.Classify(vitals.Reading{
		Pulse:       req.Pulse,
		Systolic:    req.Systolic,
		Diastolic:   req.Diastolic,
		Temperature: req.Temperature,
		SpO2:        req.SpO2,
	})

	entry := &entity.HealthTrackingEntry{
		PatientID:   userID,
		Pulse:       req.Pulse,
		Systolic:    req.Systolic,
		Diastolic:   req.Diastolic,
		Temperature: req.Temperature,
		SpO2:        req.SpO2,
		Steps:       req.Steps,
		Summary:     string(result.Summary),
		Details:     result.Details(),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.trackingRepo.Create(tx, entry); err != nil {
		u.log.Warnf("Failed to create health tracking entry: %+v", err)
		return nil, err
	}

	var alert *entity.Alert
	if result.Summary == vitals.SummaryMajorAbnormal {
		alert = &entity.Alert{
			PatientID: userID,
			Type:      entity.AlertTypeVitals,
			Message:   fmt.Sprintf("Abnormal vital signs detected (%d metrics out of range). Please consult your doctor.", result.AbnormalCount),
		}
		if err := u.alertRepo.Create(tx, alert); err != nil {
			u.log.Warnf("Failed to create vitals alert: %+v", err)
			return nil, err
		}
	}

	u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionVitalsRecord, "health_tracking", entry.ID.String(),
		entity.JSON{"summary": entry.Summary})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if alert != nil {
		// Best effort live delivery; the alert row is already committed.
		_ = u.alertStream.Publish(ctx, alert)
	}

	return converter.VitalsToResponse(entry), nil
}

// GetMyVitals returns the caller's tracking history, newest first. The
// stored summary and details are returned as written at insert time.
func (u *healthTrackingUsecase) GetMyVitals(ctx context.Context) (*dto.VitalsListResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scope := policy.ScopeFor(roleID, userID, policy.EntityHealthTracking)
	entries, err := u.trackingRepo.FindAll(scope(u.db.WithContext(ctx)))
	if err != nil {
		u.log.Warnf("Failed to find health tracking entries for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.VitalsListResponse{
		Entries: converter.VitalsToResponses(entries),
		Total:   len(entries),
	}, nil
}

// GetLatestVitals returns the most recent reading for the dashboard card,
// or nil data when the patient has no history yet.
func (u *healthTrackingUsecase) GetLatestVitals(ctx context.Context) (*dto.VitalsResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scope := policy.ScopeFor(roleID, userID, policy.EntityHealthTracking)
	entries, err := u.trackingRepo.FindRecent(scope(u.db.WithContext(ctx)), 1)
	if err != nil {
		u.log.Warnf("Failed to find latest vitals for user %s: %+v", userID, err)
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	return converter.VitalsToResponse(&entries[0]), nil
}
