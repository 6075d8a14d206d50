package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jeevanM12/Embiodary/internal/models"
	"github.com/jeevanM12/Embiodary/internal/store"
)

/* =========================
   REQUEST DTOs
========================= */

type addressRequest struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode string `json:"pinCode"`
}

type placeOrderRequest struct {
	CustomerName       string         `json:"customerName"`
	CustomerPhone      string         `json:"customerPhone"`
	Category           string         `json:"category"`
	Description        string         `json:"description" binding:"required"`
	DueDate            string         `json:"dueDate"`
	Address            addressRequest `json:"address"`
	TotalAmount        float64        `json:"totalAmount"`
	DesignID           string         `json:"designId"`
	ReferenceImages    []string       `json:"referenceImages"`
	GeneratedDesignURL string         `json:"generatedDesignUrl"`
	IsCOD              bool           `json:"isCOD"`
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type paymentUpdateRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

type assignRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}

type messageRequest struct {
	Text string `json:"text" binding:"required"`
}

type urlRequest struct {
	URL string `json:"url" binding:"required"`
}

/* =========================
   CREATE & READ
========================= */

func CreateOrder(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"

		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		category := models.CategoryCustom
		if strings.TrimSpace(req.Category) != "" {
			parsed, ok := models.ParseCategory(req.Category)
			if !ok {
				respondWithError(c, http.StatusBadRequest, route, "unknown category")
				return
			}
			category = parsed
		}

		order := st.PlaceOrder(models.Order{
			CustomerName:       req.CustomerName,
			CustomerPhone:      req.CustomerPhone,
			Category:           category,
			Description:        req.Description,
			DueDate:            req.DueDate,
			Address:            models.Address(req.Address),
			TotalAmount:        req.TotalAmount,
			DesignID:           req.DesignID,
			ReferenceImages:    req.ReferenceImages,
			GeneratedDesignURL: req.GeneratedDesignURL,
			IsCOD:              req.IsCOD,
		})

		c.JSON(http.StatusCreated, gin.H{
			"orderId": order.ID,
			"order":   order,
		})
	}
}

// GetOrders lists orders scoped to the session identity: admins see
// everything, employees their assigned work, customers their own
// orders. Without a session identity nothing is visible.
func GetOrders(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := st.CurrentUser()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		orders := st.Orders()
		switch user.Role {
		case models.RoleAdmin:
			// full view
		case models.RoleEmployee:
			orders = filterOrders(orders, func(o models.Order) bool {
				return o.AssignedEmployeeID == user.ID
			})
		default:
			orders = filterOrders(orders, func(o models.Order) bool {
				return o.CustomerID == user.ID
			})
		}

		c.JSON(http.StatusOK, orders)
	}
}

func filterOrders(orders []models.Order, keep func(models.Order) bool) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

// GetOrder returns a single order with the assignee resolved through
// the weak-reference lookup. A dangling assignment degrades to
// "Unknown" rather than failing the read.
func GetOrder(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := st.OrderByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		assignedName := "Unassigned"
		if order.AssignedEmployeeID != "" {
			assignedName = "Unknown"
			if emp, ok := st.EmployeeByID(order.AssignedEmployeeID); ok {
				assignedName = emp.Name
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"order":                order,
			"assignedEmployeeName": assignedName,
		})
	}
}

/* =========================
   LIFECYCLE MUTATIONS
========================= */

func UpdateOrderStatus(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /staff/api/orders/:id/status"

		var req statusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		status, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "unknown order status")
			return
		}

		orderID := c.Param("id")
		if _, ok := st.OrderByID(orderID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		st.UpdateOrderStatus(orderID, status)
		c.JSON(http.StatusOK, gin.H{"message": "status updated"})
	}
}

func VerifyPayment(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /staff/api/orders/:id/payment"

		var req paymentUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		status, ok := models.ParsePaymentStatus(req.PaymentStatus)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "unknown payment status")
			return
		}

		orderID := c.Param("id")
		if _, ok := st.OrderByID(orderID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		st.VerifyPayment(orderID, status)
		c.JSON(http.StatusOK, gin.H{"message": "payment status updated"})
	}
}

// AssignEmployee sets the assignee without checking the roster; the
// reference is weak on purpose and readers tolerate a miss.
func AssignEmployee(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req assignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		orderID := c.Param("id")
		if _, ok := st.OrderByID(orderID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		st.AssignEmployee(orderID, req.EmployeeID)
		c.JSON(http.StatusOK, gin.H{"message": "employee assigned"})
	}
}

func SendMessage(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req messageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		orderID := c.Param("id")
		if _, ok := st.OrderByID(orderID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		msg, ok := st.SendMessage(orderID, req.Text)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		c.JSON(http.StatusCreated, msg)
	}
}

/* =========================
   PAYMENT IMAGES
========================= */

// UploadQR attaches the staff-supplied payment QR image. Accepts either
// a multipart "file" upload or a JSON body with a url already obtained
// elsewhere.
func UploadQR(st *store.Store, uploadDir string) gin.HandlerFunc {
	return orderImageHandler(st, uploadDir, st.UploadQR)
}

// UploadPaymentProof attaches the customer's proof-of-payment image.
func UploadPaymentProof(st *store.Store, uploadDir string) gin.HandlerFunc {
	return orderImageHandler(st, uploadDir, st.UploadPaymentProof)
}

func orderImageHandler(st *store.Store, uploadDir string, apply func(orderID, url string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")
		if _, ok := st.OrderByID(orderID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		var url string
		if file, err := c.FormFile("file"); err == nil {
			saved, err := saveUpload(file, uploadDir)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			url = saved
		} else {
			var req urlRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				respondValidationError(c, err)
				return
			}
			url = req.URL
		}

		apply(orderID, url)
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
