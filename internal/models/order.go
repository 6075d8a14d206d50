package models

// OrderStatus tracks production progress. Transitions are manual staff
// overrides; any status may follow any other.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "In Progress"
	StatusCompleted  OrderStatus = "Completed"
	StatusDelivered  OrderStatus = "Delivered"
)

func ParseOrderStatus(value string) (OrderStatus, bool) {
	switch OrderStatus(value) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDelivered:
		return OrderStatus(value), true
	}
	return "", false
}

// PaymentStatus tracks payment verification independently of order
// status. Like OrderStatus it has no enforced transition graph; payment
// verification is a manual admin override.
type PaymentStatus string

const (
	PaymentPending      PaymentStatus = "Pending"
	PaymentVerified     PaymentStatus = "Verified"
	PaymentFailed       PaymentStatus = "Failed"
	PaymentCODPending   PaymentStatus = "COD Pending"
	PaymentCODCompleted PaymentStatus = "COD Completed"
)

func ParsePaymentStatus(value string) (PaymentStatus, bool) {
	switch PaymentStatus(value) {
	case PaymentPending, PaymentVerified, PaymentFailed, PaymentCODPending, PaymentCODCompleted:
		return PaymentStatus(value), true
	}
	return "", false
}

// Paid reports whether a payment status counts toward revenue.
func (p PaymentStatus) Paid() bool {
	return p == PaymentVerified || p == PaymentCODCompleted
}

// Address is the delivery address captured with an order.
type Address struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode string `json:"pinCode"`
}

// Order is a customer's commission request. AssignedEmployeeID and
// DesignID are weak references: they may point at entities that no
// longer exist and readers must handle the miss.
type Order struct {
	ID                 string        `json:"id"`
	CustomerID         string        `json:"customerId"`
	CustomerName       string        `json:"customerName"`
	CustomerPhone      string        `json:"customerPhone"`
	Category           Category      `json:"category"`
	Description        string        `json:"description"`
	Status             OrderStatus   `json:"status"`
	PaymentStatus      PaymentStatus `json:"paymentStatus"`
	DueDate            string        `json:"dueDate"`
	Address            Address       `json:"address"`
	TotalAmount        float64       `json:"totalAmount"`
	AssignedEmployeeID string        `json:"assignedEmployeeId,omitempty"`
	DesignID           string        `json:"designId,omitempty"`
	ReferenceImages    []string      `json:"referenceImages,omitempty"`
	GeneratedDesignURL string        `json:"generatedDesignUrl,omitempty"`
	Messages           []ChatMessage `json:"messages"`
	QRCodeURL          string        `json:"qrCodeUrl,omitempty"`
	PaymentProofURL    string        `json:"paymentProofUrl,omitempty"`
	IsCOD              bool          `json:"isCOD"`
}
