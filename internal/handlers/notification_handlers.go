package handlers

import (
	"errors"
	"net/http"

	"gymdesk_backend/internal/middleware"
	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/services"
	"gymdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler holds the notification service.
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(ns services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: ns}
}

// Send handles POST /api/notifications/send and reports a delivery
// count. Fire-and-forget: there is nothing to persist.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req models.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	gymID := middleware.GymID(c)

	if !middleware.BackendAvailable(c) {
		// Demo mode: count explicit recipients, or the demo members a
		// selection rule would match.
		sent := len(req.Recipients)
		if sent == 0 {
			for _, m := range models.DemoMembers() {
				if req.SelectionRule == nil || req.SelectionRule.Status == "" || m.Status == req.SelectionRule.Status {
					sent++
				}
			}
		}
		markDegraded(c)
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"sent": sent}})
		return
	}

	sent, err := h.notificationService.Send(gymID, req)
	if err != nil {
		if errors.Is(err, services.ErrNotificationValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "Send: recipient resolution failed, reporting zero deliveries")
		markDegraded(c)
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"sent": 0}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"sent": sent}})
}
