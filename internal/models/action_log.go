package models

// ActionLog is an append-only audit record written whenever an employee
// performs a tracked mutation. Timestamp is unix milliseconds; entries
// are kept newest first.
type ActionLog struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Action       string `json:"action"`
	Details      string `json:"details"`
	Timestamp    int64  `json:"timestamp"`
	OrderID      string `json:"orderId"`
}
