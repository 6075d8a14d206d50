package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeevanM12/Embiodary/internal/store"
)

// GetNotifications returns the currently visible transient
// notifications. Each expires on its own 3-second timer, so this list
// is a moving window, not a log.
func GetNotifications(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Notifications())
	}
}

// DismissNotification removes a notification ahead of its timer.
func DismissNotification(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		st.Dismiss(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "dismissed"})
	}
}
