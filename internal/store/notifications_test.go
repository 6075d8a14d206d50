package store

import (
	"testing"
	"time"

	"github.com/jeevanM12/Embiodary/internal/models"
)

func hasNotification(s *Store, id string) bool {
	for _, n := range s.Notifications() {
		if n.ID == id {
			return true
		}
	}
	return false
}

func TestNotificationExpiry(t *testing.T) {
	s := newTestStore()
	s.notificationTTL = 100 * time.Millisecond

	n := s.AddNotification("order placed", models.NotifySuccess)

	if !hasNotification(s, n.ID) {
		t.Fatal("notification must be visible right after adding")
	}

	time.Sleep(20 * time.Millisecond)
	if !hasNotification(s, n.ID) {
		t.Fatal("notification expired too early")
	}

	time.Sleep(150 * time.Millisecond)
	if hasNotification(s, n.ID) {
		t.Fatal("notification must be gone after the expiry delay")
	}
}

func TestNotificationTimersAreIndependent(t *testing.T) {
	s := newTestStore()
	s.notificationTTL = 100 * time.Millisecond

	first := s.AddNotification("first", models.NotifyInfo)
	time.Sleep(60 * time.Millisecond)
	second := s.AddNotification("second", models.NotifyInfo)

	time.Sleep(70 * time.Millisecond)
	if hasNotification(s, first.ID) {
		t.Fatal("first notification should have expired")
	}
	if !hasNotification(s, second.ID) {
		t.Fatal("second notification expired with the first")
	}
}

func TestDismissCancelsTimer(t *testing.T) {
	s := newTestStore()
	s.notificationTTL = 100 * time.Millisecond

	n := s.AddNotification("dismiss me", models.NotifyWarning)
	s.Dismiss(n.ID)

	if hasNotification(s, n.ID) {
		t.Fatal("dismissed notification must be removed immediately")
	}

	s.mu.RLock()
	_, timerKept := s.expiry[n.ID]
	s.mu.RUnlock()
	if timerKept {
		t.Fatal("dismiss must release the expiry timer")
	}

	// the cancelled timer firing later must not disturb anything
	time.Sleep(150 * time.Millisecond)
	if hasNotification(s, n.ID) {
		t.Fatal("notification reappeared after dismiss")
	}
}

func TestDismissUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore()
	s.AddNotification("keep", models.NotifySuccess)

	s.Dismiss("no-such-id")
	if len(s.Notifications()) != 1 {
		t.Fatal("dismissing an unknown id must not drop other notifications")
	}
}
