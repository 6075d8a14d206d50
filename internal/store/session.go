package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jeevanM12/Embiodary/internal/models"
)

// Login establishes the session identity.
//
// Admin and customer logins always succeed with a fixed demo identity;
// there are no credentials for those roles. Employee login requires the
// 6-digit employee code and fails with an error notification when the
// code is missing or unknown. Every path, success or failure, enqueues
// a notification describing the outcome.
func (s *Store) Login(role models.Role, employeeCode string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role == models.RoleEmployee {
		if employeeCode == "" {
			s.notify("Please enter Employee ID", models.NotifyError)
			return models.User{}, false
		}
		for _, emp := range s.employees {
			if emp.EmployeeID == employeeCode {
				u := emp
				s.user = &u
				s.notify(fmt.Sprintf("Welcome back, %s", emp.Name), models.NotifySuccess)
				s.logger.Info("employee logged in", zap.String("employeeId", emp.ID))
				return emp, true
			}
		}
		s.notify("Invalid Employee ID", models.NotifyError)
		s.logger.Warn("employee login rejected", zap.String("code", employeeCode))
		return models.User{}, false
	}

	u := demoIdentity(role)
	s.user = &u
	s.notify(fmt.Sprintf("Logged in as %s", role), models.NotifySuccess)
	return u, true
}

// Logout clears the session identity unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.notify("Logged out successfully", models.NotifySuccess)
}

func demoIdentity(role models.Role) models.User {
	if role == models.RoleAdmin {
		return models.User{ID: "admin1", Name: "Admin User", Role: role, Phone: "9876543210"}
	}
	return models.User{ID: "cust1", Name: "Priya Sharma", Role: role, Phone: "9876543210"}
}
