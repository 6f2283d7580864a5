package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learning-notifier/learning-notifier/internal/notify"
)

// TestNotificationRequest asks for a canned topic email to one address.
type TestNotificationRequest struct {
	Email string `json:"email" binding:"required"`
}

// NotifyHandler exposes manual entry points into the notification workflow.
type NotifyHandler struct {
	svc *notify.Service
}

func NewNotifyHandler(s *notify.Service) *NotifyHandler {
	return &NotifyHandler{svc: s}
}

// Register routes under /notify
func (h *NotifyHandler) Register(r *gin.Engine) {
	g := r.Group("/notify")
	g.POST("/test", h.SendTest)
	g.POST("/trigger", h.Trigger)
}

// SendTest sends a test notification with canned content to a single address
func (h *NotifyHandler) SendTest(c *gin.Context) {
	var req TestNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	ok := h.svc.SendTestNotification(c.Request.Context(), req.Email)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to send test notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Test notification sent successfully"})
}

// Trigger runs the full daily-notification workflow immediately. The run
// itself reports per-recipient outcomes through logs and metrics; the HTTP
// response only acknowledges that the run was started and finished.
func (h *NotifyHandler) Trigger(c *gin.Context) {
	_, _, _ = h.svc.Run(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Daily notifications triggered successfully"})
}
