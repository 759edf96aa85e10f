package handler

import (
	"log"
	"net/http"
	"time"

	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subSvc *service.SubscriptionService
}

func NewSubscriptionHandler(subSvc *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subSvc: subSvc}
}

type createSubscriptionRequest struct {
	Email     string `json:"email" binding:"required"`
	EventType string `json:"eventType" binding:"required"`
	EventDate string `json:"eventDate" binding:"required"`
}

// Create records a waitlist signup.
// POST /api/subscription
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid"})
		return
	}
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid"})
		return
	}
	created, err := h.subSvc.Subscribe(req.Email, req.EventType, eventDate)
	if err != nil {
		log.Printf("[subscription] create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "created": created})
}

func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
