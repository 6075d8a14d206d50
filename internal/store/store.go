package store

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeevanM12/Embiodary/internal/models"
)

const defaultNotificationTTL = 3 * time.Second

// Store is the single in-memory container of application state for one
// session. Every mutation goes through a Store method and enqueues a
// transient notification as a side effect. Nothing survives process
// exit; there is no persistence tier behind it.
//
// The mutex is the explicit ownership boundary: handlers run on the
// HTTP server's goroutines and never touch the collections directly.
type Store struct {
	mu     sync.RWMutex
	logger *zap.Logger

	user       *models.User
	designs    []models.Design
	orders     []models.Order
	employees  []models.User
	offers     []models.Offer
	actionLogs []models.ActionLog

	notifications   []models.Notification
	expiry          map[string]*time.Timer
	notificationTTL time.Duration

	lastOrderID int64
	randInt     func(n int) int
}

// New builds an empty Store. The logger is required; pass zap.NewNop()
// when logging is unwanted.
func New(logger *zap.Logger) *Store {
	return &Store{
		logger:          logger,
		expiry:          make(map[string]*time.Timer),
		notificationTTL: defaultNotificationTTL,
		randInt:         rand.IntN,
	}
}

// CurrentUser returns the logged-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Designs returns a copy of the catalog, newest first.
func (s *Store) Designs() []models.Design {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Design, len(s.designs))
	for i, d := range s.designs {
		out[i] = cloneDesign(d)
	}
	return out
}

// DesignByID looks up a catalog item. The id may be a stale reference;
// callers handle the miss.
func (s *Store) DesignByID(id string) (models.Design, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.designs {
		if d.ID == id {
			return cloneDesign(d), true
		}
	}
	return models.Design{}, false
}

// Orders returns a copy of every order, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func (s *Store) OrderByID(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

// Employees returns a copy of the workforce roster.
func (s *Store) Employees() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.employees))
	copy(out, s.employees)
	return out
}

// EmployeeByID resolves a weak employee reference by internal id.
// Orders may hold ids of removed employees, so a miss is expected and
// callers substitute a placeholder instead of failing.
func (s *Store) EmployeeByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.User{}, false
}

// Offers returns the promotional banners in display order.
func (s *Store) Offers() []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Offer, len(s.offers))
	copy(out, s.offers)
	return out
}

// ActionLogs returns the employee audit trail, newest first.
func (s *Store) ActionLogs() []models.ActionLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ActionLog, len(s.actionLogs))
	copy(out, s.actionLogs)
	return out
}

// appendActionLog records an employee-performed mutation. Caller must
// hold the write lock and have verified the actor is an employee.
func (s *Store) appendActionLog(actor models.User, action, details, orderID string) {
	entry := models.ActionLog{
		ID:           uuid.NewString(),
		EmployeeID:   actor.ID,
		EmployeeName: actor.Name,
		Action:       action,
		Details:      details,
		Timestamp:    time.Now().UnixMilli(),
		OrderID:      orderID,
	}
	s.actionLogs = append([]models.ActionLog{entry}, s.actionLogs...)
}

func cloneDesign(d models.Design) models.Design {
	d.Images = append([]string(nil), d.Images...)
	return d
}

func cloneOrder(o models.Order) models.Order {
	// messages stay a non-nil slice so order JSON always carries [].
	msgs := make([]models.ChatMessage, len(o.Messages))
	copy(msgs, o.Messages)
	o.Messages = msgs
	o.ReferenceImages = append([]string(nil), o.ReferenceImages...)
	return o
}

// shortID is the last part of an order id used in user-facing text.
func shortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}
