package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jeevanM12/Embiodary/internal/models"
	"github.com/jeevanM12/Embiodary/internal/store"
)

type LoginRequest struct {
	Role         string `json:"role" binding:"required"`
	EmployeeCode string `json:"employeeCode"`
}

// Login establishes the session identity in the store and issues a
// bearer token carrying the role tag so the role-guarded route groups
// can gate access. Admin and customer logins always succeed; employee
// login is gated on the 6-digit code.
func Login(st *store.Store, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/login"

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		role, ok := models.ParseRole(req.Role)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "unknown role")
			return
		}

		user, ok := st.Login(role, req.EmployeeCode)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "invalid employee id")
			return
		}

		claims := jwt.MapClaims{
			"sub":  user.ID,
			"role": string(user.Role),
			"name": user.Name,
			"exp":  time.Now().Add(accessTTL).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": signed,
			"user":  user,
		})
	}
}

// Logout clears the session identity. Always succeeds.
func Logout(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		st.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}
