package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jeevanM12/Embiodary/internal/models"
	"github.com/jeevanM12/Embiodary/internal/store"
)

func newSeededStore() *store.Store {
	st := store.New(zap.NewNop())
	st.Seed()
	return st
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := newSeededStore()
	r := gin.New()
	r.PUT("/orders/:id/status", UpdateOrderStatus(st))

	w := performJSON(t, r, "PUT", "/orders/1715002/status", gin.H{"status": "Bogus"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	order, _ := st.OrderByID("1715002")
	if order.Status != models.StatusPending {
		t.Fatalf("status must be unchanged, got %q", order.Status)
	}
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := newSeededStore()
	r := gin.New()
	r.PUT("/orders/:id/status", UpdateOrderStatus(st))

	w := performJSON(t, r, "PUT", "/orders/nope/status", gin.H{"status": "Completed"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateOrderStatusHappyPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := newSeededStore()
	r := gin.New()
	r.PUT("/orders/:id/status", UpdateOrderStatus(st))

	w := performJSON(t, r, "PUT", "/orders/1715002/status", gin.H{"status": "In Progress"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	order, _ := st.OrderByID("1715002")
	if order.Status != models.StatusInProgress {
		t.Fatalf("expected In Progress, got %q", order.Status)
	}
}

func TestCreateOrderGuestDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.New(zap.NewNop())
	r := gin.New()
	r.POST("/orders", CreateOrder(st))

	w := performJSON(t, r, "POST", "/orders", gin.H{
		"description": "custom logo",
		"isCOD":       true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	order, ok := st.OrderByID(resp.OrderID)
	if !ok {
		t.Fatalf("order %q not in store", resp.OrderID)
	}
	if order.CustomerID != "guest" {
		t.Fatalf("expected guest customer, got %q", order.CustomerID)
	}
	if order.PaymentStatus != models.PaymentCODPending {
		t.Fatalf("expected COD Pending, got %q", order.PaymentStatus)
	}
}

func TestCreateOrderRequiresDescription(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.New(zap.NewNop())
	r := gin.New()
	r.POST("/orders", CreateOrder(st))

	w := performJSON(t, r, "POST", "/orders", gin.H{"category": "Custom Orders"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetOrdersScopedByRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := newSeededStore()
	r := gin.New()
	r.GET("/orders", GetOrders(st))

	// no session
	w := performJSON(t, r, "GET", "/orders", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}

	// admin sees all three seed orders
	st.Login(models.RoleAdmin, "")
	w = performJSON(t, r, "GET", "/orders", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var orders []models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("admin should see 3 orders, got %d", len(orders))
	}

	// employee emp1 sees the two orders assigned to them
	st.Login(models.RoleEmployee, "100100")
	w = performJSON(t, r, "GET", "/orders", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("employee should see 2 assigned orders, got %d", len(orders))
	}
	for _, o := range orders {
		if o.AssignedEmployeeID != "emp1" {
			t.Fatalf("employee saw a foreign order: %+v", o)
		}
	}
}

func TestGetOrderResolvesDanglingAssignee(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := newSeededStore()
	st.RemoveEmployee("emp1")

	r := gin.New()
	r.GET("/orders/:id", GetOrder(st))

	w := performJSON(t, r, "GET", "/orders/1715001", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for order with dangling assignee, got %d", w.Code)
	}

	var resp struct {
		AssignedEmployeeName string `json:"assignedEmployeeName"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AssignedEmployeeName != "Unknown" {
		t.Fatalf("expected Unknown placeholder, got %q", resp.AssignedEmployeeName)
	}
}
