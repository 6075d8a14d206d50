package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeevanM12/Embiodary/internal/store"
)

// GetActionLogs returns the employee audit trail, newest first.
func GetActionLogs(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.ActionLogs())
	}
}
