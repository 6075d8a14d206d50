package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeevanM12/Embiodary/internal/models"
)

// Notifications returns the currently visible notifications.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// AddNotification enqueues a transient notification that removes itself
// after the store's expiry delay. Each notification has its own timer,
// unaffected by later mutations.
func (s *Store) AddNotification(message string, typ models.NotificationType) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notify(message, typ)
}

// Dismiss removes a notification before its timer fires and cancels the
// timer. Unknown ids are a no-op.
func (s *Store) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeNotification(id)
}

// notify is the internal enqueue used by every mutator. Caller must
// hold the write lock.
func (s *Store) notify(message string, typ models.NotificationType) models.Notification {
	n := models.Notification{
		ID:      uuid.NewString(),
		Message: message,
		Type:    typ,
	}
	s.notifications = append(s.notifications, n)
	s.expiry[n.ID] = time.AfterFunc(s.notificationTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.removeNotification(n.ID)
	})
	return n
}

// removeNotification drops a notification and releases its timer.
// Caller must hold the write lock. Safe to call for ids that already
// expired or were dismissed.
func (s *Store) removeNotification(id string) {
	if t, ok := s.expiry[id]; ok {
		t.Stop()
		delete(s.expiry, id)
	}
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}
