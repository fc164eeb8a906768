package service

import (
	"sync"

	"github.com/google/uuid"

	"healthconnect/internal/domain/entity"
)

// AlertFeed holds one viewer's in-memory alert list: an initial bulk load
// (already newest first) merged with live-delivered inserts. Live alerts are
// prepended in delivery order and never re-sorted; a delivery whose timestamp
// is older than the current head still goes to the front. Duplicate ids are
// dropped silently.
type AlertFeed struct {
	mu     sync.Mutex
	alerts []entity.Alert
	seen   map[uuid.UUID]struct{}
}

// NewAlertFeed seeds a feed with the initial load, newest first.
func NewAlertFeed(initial []entity.Alert) *AlertFeed {
	f := &AlertFeed{
		alerts: make([]entity.Alert, 0, len(initial)),
		seen:   make(map[uuid.UUID]struct{}, len(initial)),
	}
	for _, a := range initial {
		if _, dup := f.seen[a.ID]; dup {
			continue
		}
		f.seen[a.ID] = struct{}{}
		f.alerts = append(f.alerts, a)
	}
	return f
}

// Push prepends a live-delivered alert. Returns false if the id was already
// present and the feed is unchanged.
func (f *AlertFeed) Push(alert entity.Alert) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, dup := f.seen[alert.ID]; dup {
		return false
	}
	f.seen[alert.ID] = struct{}{}
	f.alerts = append([]entity.Alert{alert}, f.alerts...)
	return true
}

// Snapshot returns a copy of the current list, newest delivery first.
func (f *AlertFeed) Snapshot() []entity.Alert {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]entity.Alert, len(f.alerts))
	copy(out, f.alerts)
	return out
}

// Len returns the number of alerts in the feed.
func (f *AlertFeed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.alerts)
}
