package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sravanthchary14/sustainshare/internal/service"
)

// NotificationHandler serves the per-user activity feed.
type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/notifications/user/:userId", h.GetNotificationsForUser)
}

func (h *NotificationHandler) GetNotificationsForUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	feed, err := h.notifications.FeedForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build notifications"})
		return
	}
	c.JSON(http.StatusOK, feed)
}
