package models

// Role tags what a logged-in user is allowed to do.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleCustomer Role = "CUSTOMER"
	RoleGuest    Role = "GUEST"
)

// ParseRole maps a raw string onto a known role.
func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleAdmin, RoleEmployee, RoleCustomer, RoleGuest:
		return Role(value), true
	}
	return "", false
}

// User is a session identity. Employees carry a 6-digit EmployeeID used
// as their login code; admin and customer identities are synthesized at
// login and carry none.
type User struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId,omitempty"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Phone      string `json:"phone,omitempty"`
}
