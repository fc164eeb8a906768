package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"healthconnect/internal/converter"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/policy"
	"healthconnect/internal/domain/repository"
	"healthconnect/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Unread counts are cached briefly; the badge tolerates slight staleness.
const unreadCountTTL = 30 * time.Second

type AlertUsecase interface {
	GetMyAlerts(ctx context.Context) (*dto.AlertListResponse, error)
	GetUnreadCount(ctx context.Context) (*dto.UnreadCountResponse, error)
	MarkAllRead(ctx context.Context) (*dto.MarkReadResponse, error)
	Stream(ctx context.Context) (*service.AlertFeed, <-chan entity.Alert, func(), error)
}

type alertUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	alertRepo    repository.AlertRepository
	redisClient  *redis.Client
	alertStream  *service.AlertStream
	auditService service.AuditService
}

func NewAlertUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	alertRepo repository.AlertRepository,
	redisClient *redis.Client,
	alertStream *service.AlertStream,
	auditService service.AuditService,
) AlertUsecase {
	return &alertUsecase{
		db:           db,
		log:          log,
		alertRepo:    alertRepo,
		redisClient:  redisClient,
		alertStream:  alertStream,
		auditService: auditService,
	}
}

// GetMyAlerts returns the caller's alerts, newest first. This is the
// initial load a live feed is seeded with.
func (u *alertUsecase) GetMyAlerts(ctx context.Context) (*dto.AlertListResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scope := policy.ScopeFor(roleID, userID, policy.EntityAlert)
	alerts, err := u.alertRepo.FindAll(scope(u.db.WithContext(ctx)))
	if err != nil {
		u.log.Warnf("Failed to find alerts for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AlertListResponse{
		Alerts: converter.AlertsToResponses(alerts),
		Total:  len(alerts),
	}, nil
}

func (u *alertUsecase) GetUnreadCount(ctx context.Context) (*dto.UnreadCountResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if roleID != entity.RoleIDPatient {
		return nil, policy.ErrPermissionDenied
	}

	cacheKey := unreadCountKey(userID)
	if cached, err := u.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
			return &dto.UnreadCountResponse{UnreadCount: count}, nil
		}
	}

	count, err := u.alertRepo.CountUnread(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to count unread alerts for user %s: %+v", userID, err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, cacheKey, count, unreadCountTTL).Err(); err != nil {
		u.log.Warnf("Failed to cache unread count for user %s: %+v", userID, err)
	}

	return &dto.UnreadCountResponse{UnreadCount: count}, nil
}

// MarkAllRead persists the read flag on every unread alert so the state
// survives reloads instead of resetting with each session.
func (u *alertUsecase) MarkAllRead(ctx context.Context) (*dto.MarkReadResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	own := policy.Ownership{PatientID: userID}
	if !policy.CanMutate(roleID, policy.EntityAlert, policy.ActionMarkRead, userID, own) {
		return nil, policy.ErrPermissionDenied
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	updated, err := u.alertRepo.MarkAllRead(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to mark alerts read for user %s: %+v", userID, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAlertsMarkRead, "alert", userID.String(), nil,
		entity.JSON{"updated": updated})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Del(ctx, unreadCountKey(userID)).Err(); err != nil {
		u.log.Warnf("Failed to invalidate unread count cache for user %s: %+v", userID, err)
	}

	return &dto.MarkReadResponse{Updated: updated}, nil
}

// Stream opens a live feed for the calling patient: the current alert list
// as the initial load, plus a channel of inserts delivered while the stream
// is open. The caller pushes live alerts into the feed so duplicates are
// dropped and new arrivals land at the front. The stop function must be
// called when the viewer goes away.
func (u *alertUsecase) Stream(ctx context.Context) (*service.AlertFeed, <-chan entity.Alert, func(), error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if roleID != entity.RoleIDPatient {
		return nil, nil, nil, policy.ErrPermissionDenied
	}

	// Subscribe before the initial load so an insert in between is not
	// lost; the feed drops it as a duplicate if it shows up in both.
	live, stop := u.alertStream.Subscribe(ctx, userID)

	scope := policy.ScopeFor(roleID, userID, policy.EntityAlert)
	initial, err := u.alertRepo.FindAll(scope(u.db.WithContext(ctx)))
	if err != nil {
		stop()
		u.log.Warnf("Failed to load alerts for stream %s: %+v", userID, err)
		return nil, nil, nil, err
	}

	return service.NewAlertFeed(initial), live, stop, nil
}

func unreadCountKey(userID uuid.UUID) string {
	return fmt.Sprintf("unread_alerts:%s", userID.String())
}
