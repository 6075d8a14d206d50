package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeevanM12/Embiodary/internal/models"
)

// PlaceOrder creates a new order from a caller-supplied draft. Missing
// identity fields are filled from the current user (or a guest
// placeholder), status starts at Pending and payment status follows the
// COD rule. The caller is responsible for a well-formed description,
// address and amount; no completeness validation happens here.
func (s *Store) PlaceOrder(draft models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := draft
	order.ID = s.nextOrderID()
	order.Status = models.StatusPending
	if order.IsCOD {
		order.PaymentStatus = models.PaymentCODPending
	} else {
		order.PaymentStatus = models.PaymentPending
	}
	order.Messages = nil
	if order.Category == "" {
		order.Category = models.CategoryCustom
	}
	if s.user != nil {
		order.CustomerID = s.user.ID
		if order.CustomerName == "" {
			order.CustomerName = s.user.Name
		}
		if order.CustomerPhone == "" {
			order.CustomerPhone = s.user.Phone
		}
	} else {
		order.CustomerID = "guest"
		if order.CustomerName == "" {
			order.CustomerName = "Guest"
		}
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.notify("Order placed successfully! Check your dashboard.", models.NotifySuccess)
	s.logger.Info("order placed",
		zap.String("orderId", order.ID),
		zap.String("customerId", order.CustomerID),
		zap.Bool("cod", order.IsCOD))
	return cloneOrder(order)
}

// nextOrderID allocates a time-based order id, bumped when two orders
// land in the same millisecond so ids stay unique and monotonic.
// Caller must hold the write lock.
func (s *Store) nextOrderID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastOrderID {
		id = s.lastOrderID + 1
	}
	s.lastOrderID = id
	return fmt.Sprintf("%d", id)
}

// UpdateOrderStatus replaces an order's status unconditionally. There
// is no legal-transition graph; staff drive the status by hand. Unknown
// ids leave the collection untouched but still notify.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			break
		}
	}
	s.notify(fmt.Sprintf("Order #%s status updated to %s", shortID(orderID), status), models.NotifySuccess)

	if s.user != nil && s.user.Role == models.RoleEmployee {
		s.appendActionLog(*s.user, "Status Update",
			fmt.Sprintf("Updated Order #%s to %s", shortID(orderID), status), orderID)
	}
}

// VerifyPayment replaces an order's payment status unconditionally.
// This is a manual override surface: Failed -> Verified is allowed.
func (s *Store) VerifyPayment(orderID string, status models.PaymentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].PaymentStatus = status
			break
		}
	}
	s.notify(fmt.Sprintf("Payment %s for Order #%s", status, shortID(orderID)), models.NotifySuccess)
}

// AssignEmployee sets the order's assignee. The employee id is a weak
// reference and is not checked against the roster; readers fall back to
// a placeholder when it no longer resolves.
func (s *Store) AssignEmployee(orderID, employeeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].AssignedEmployeeID = employeeID
			break
		}
	}
	name := "Employee"
	for _, e := range s.employees {
		if e.ID == employeeID {
			name = e.Name
			break
		}
	}
	s.notify(fmt.Sprintf("Assigned %s to Order #%s", name, shortID(orderID)), models.NotifySuccess)
}

// UploadQR records the payment QR image supplied by staff. The url is
// an opaque locator; the store never inspects the file behind it.
func (s *Store) UploadQR(orderID, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].QRCodeURL = url
			break
		}
	}
	s.notify("QR Code uploaded for order", models.NotifySuccess)
}

// UploadPaymentProof records the customer's proof-of-payment image.
func (s *Store) UploadPaymentProof(orderID, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].PaymentProofURL = url
			break
		}
	}
	s.notify("Payment proof uploaded. Waiting for verification.", models.NotifySuccess)
}

// SendMessage appends a chat message to an order's conversation on
// behalf of the current user. Without a session identity it is a no-op
// returning false. Existing messages are never touched.
func (s *Store) SendMessage(orderID, text string) (models.ChatMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.ChatMessage{}, false
	}

	msg := models.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   s.user.ID,
		SenderName: s.user.Name,
		Text:       text,
		Timestamp:  time.Now().UnixMilli(),
		IsAdmin:    s.user.Role == models.RoleAdmin,
	}
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Messages = append(s.orders[i].Messages, msg)
			break
		}
	}

	if s.user.Role == models.RoleEmployee {
		s.appendActionLog(*s.user, "Message Sent",
			fmt.Sprintf("Sent message in Order #%s", shortID(orderID)), orderID)
	}
	s.notify("Message sent", models.NotifySuccess)
	return msg, true
}
