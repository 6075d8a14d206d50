package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeevanM12/Embiodary/internal/models"
	"github.com/jeevanM12/Embiodary/internal/store"
)

type createEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func GetEmployees(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Employees())
	}
}

// CreateEmployee adds a staff member. The response carries the
// generated 6-digit login code; it is shown once to the admin and is
// the employee's only credential.
func CreateEmployee(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createEmployeeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		emp := st.AddEmployee(models.User{Name: req.Name, Phone: req.Phone})
		c.JSON(http.StatusCreated, emp)
	}
}

// DeleteEmployee removes a staff member. Orders assigned to them keep
// the stale reference by design.
func DeleteEmployee(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := st.EmployeeByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		st.RemoveEmployee(id)
		c.JSON(http.StatusOK, gin.H{"message": "employee removed"})
	}
}
