package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"healthconnect/internal/domain/entity"
)

func alertAt(t time.Time) entity.Alert {
	return entity.Alert{ID: uuid.New(), Type: entity.AlertTypeSystem, CreatedAt: t}
}

func TestAlertFeedMergeAndDedup(t *testing.T) {
	base := time.Now()
	a := alertAt(base.Add(3 * time.Second))
	b := alertAt(base.Add(2 * time.Second))
	c := alertAt(base.Add(1 * time.Second))

	feed := NewAlertFeed([]entity.Alert{a, b, c})

	d := alertAt(base.Add(4 * time.Second))
	if !feed.Push(d) {
		t.Fatal("first delivery of D should be accepted")
	}

	got := feed.Snapshot()
	want := []uuid.UUID{d.ID, a.ID, b.ID, c.ID}
	if len(got) != len(want) {
		t.Fatalf("feed length = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("feed[%d].ID = %s, want %s", i, got[i].ID, id)
		}
	}

	// Re-delivering D is a no-op.
	if feed.Push(d) {
		t.Error("duplicate delivery should be dropped")
	}
	if feed.Len() != 4 {
		t.Errorf("feed length after duplicate = %d, want 4", feed.Len())
	}
}

func TestAlertFeedOutOfOrderDeliveryStillPrepends(t *testing.T) {
	base := time.Now()
	head := alertAt(base.Add(10 * time.Second))
	feed := NewAlertFeed([]entity.Alert{head})

	// Older than the head: ordering is delivery order, not timestamp order.
	stale := alertAt(base.Add(5 * time.Second))
	feed.Push(stale)

	got := feed.Snapshot()
	if got[0].ID != stale.ID {
		t.Errorf("feed head = %s, want the latest delivery %s", got[0].ID, stale.ID)
	}
}

func TestAlertFeedDedupsInitialLoad(t *testing.T) {
	a := alertAt(time.Now())
	feed := NewAlertFeed([]entity.Alert{a, a})
	if feed.Len() != 1 {
		t.Errorf("feed length = %d, want 1", feed.Len())
	}
}

func TestAlertFeedSnapshotIsACopy(t *testing.T) {
	a := alertAt(time.Now())
	feed := NewAlertFeed([]entity.Alert{a})

	snap := feed.Snapshot()
	snap[0].Message = "mutated"

	if feed.Snapshot()[0].Message == "mutated" {
		t.Error("snapshot must not alias internal state")
	}
}
