package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"healthconnect/internal/domain/entity"
)

// Redis channel prefix for per-patient alert delivery
const alertChannelPrefix = "alerts:"

// AlertStream delivers alert inserts to live viewers over redis Pub/Sub.
// Each patient has their own channel, so a subscription can never observe
// another patient's alerts.
type AlertStream struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewAlertStream(redisClient *redis.Client, log *logrus.Logger) *AlertStream {
	return &AlertStream{
		redisClient: redisClient,
		log:         log,
	}
}

func alertChannel(patientID uuid.UUID) string {
	return fmt.Sprintf("%s%s", alertChannelPrefix, patientID.String())
}

// Publish pushes a freshly inserted alert to the owner's channel. Delivery
// is best effort: the alert is already persisted, so a viewer that missed
// the push picks it up on the next initial load.
func (s *AlertStream) Publish(ctx context.Context, alert *entity.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	if err := s.redisClient.Publish(ctx, alertChannel(alert.PatientID), payload).Err(); err != nil {
		s.log.Warnf("Failed to publish alert %s: %+v", alert.ID, err)
		return err
	}

	return nil
}

// Subscribe opens a live alert feed for one patient. The returned channel is
// closed when ctx ends or stop is called; stop must be called when the
// consuming view goes away so no listener stays bound to a stale user.
func (s *AlertStream) Subscribe(ctx context.Context, patientID uuid.UUID) (<-chan entity.Alert, func()) {
	pubsub := s.redisClient.Subscribe(ctx, alertChannel(patientID))
	out := make(chan entity.Alert)

	stop := func() {
		if err := pubsub.Close(); err != nil {
			s.log.Warnf("Failed to close alert subscription for %s: %+v", patientID, err)
		}
	}

	go func() {
		defer close(out)
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var alert entity.Alert
				if err := json.Unmarshal([]byte(msg.Payload), &alert); err != nil {
					s.log.Warnf("Failed to decode alert payload: %+v", err)
					continue
				}
				select {
				case out <- alert:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, stop
}
