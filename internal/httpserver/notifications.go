package httpserver

import (
	"net/http"

	"scoopdash/internal/notify"

	"github.com/gin-gonic/gin"
)

func listNotificationsHandler(notes *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, notes.Active())
	}
}

func dismissNotificationHandler(notes *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !notes.Dismiss(c.Param("id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
