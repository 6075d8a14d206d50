package store

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeevanM12/Embiodary/internal/models"
)

// AddEmployee adds a staff member with a freshly generated 6-digit
// login code. The code is drawn uniformly from [100000, 999999] and
// redrawn on collision so no two employees ever share one. Role is
// forced to EMPLOYEE regardless of the draft. The notification carries
// the generated code since it is the employee's only credential.
func (s *Store) AddEmployee(draft models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp := models.User{
		ID:         uuid.NewString(),
		EmployeeID: s.generateEmployeeCode(),
		Name:       draft.Name,
		Role:       models.RoleEmployee,
		Phone:      draft.Phone,
	}
	if emp.Name == "" {
		emp.Name = "New Employee"
	}

	s.employees = append(s.employees, emp)
	s.notify(fmt.Sprintf("Added %s. Login ID: %s", emp.Name, emp.EmployeeID), models.NotifySuccess)
	s.logger.Info("employee added", zap.String("id", emp.ID))
	return emp
}

// generateEmployeeCode draws 6-digit codes until one is unused. The
// draw space dwarfs any plausible roster, so the loop terminates
// quickly. Caller must hold the write lock.
func (s *Store) generateEmployeeCode() string {
	for {
		code := strconv.Itoa(100000 + s.randInt(900000))
		taken := false
		for _, e := range s.employees {
			if e.EmployeeID == code {
				taken = true
				break
			}
		}
		if !taken {
			return code
		}
	}
}

// RemoveEmployee drops a staff member from the roster. Orders assigned
// to the removed employee keep their AssignedEmployeeID; the dangling
// reference is tolerated and readers substitute a placeholder.
func (s *Store) RemoveEmployee(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.employees[:0]
	for _, e := range s.employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.employees = kept
	s.notify("Employee removed.", models.NotifySuccess)
}
