package handler

import (
	"errors"
	"log"
	"net/http"

	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	referralSvc *service.ReferralService
}

func NewReferralHandler(referralSvc *service.ReferralService) *ReferralHandler {
	return &ReferralHandler{referralSvc: referralSvc}
}

type createReferralRequest struct {
	Email string `json:"email" binding:"required"`
}

// Create returns the referral code for an email, minting one when needed.
// POST /api/referral
func (h *ReferralHandler) Create(c *gin.Context) {
	var req createReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid"})
		return
	}
	code, existing, err := h.referralSvc.IssueCode(req.Email)
	if err != nil {
		log.Printf("[referral] issue code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server_error"})
		return
	}
	resp := gin.H{"ok": true, "code": code}
	if existing {
		resp["existing"] = true
	}
	c.JSON(http.StatusOK, resp)
}

type confirmReferralRequest struct {
	Code      string `json:"code" binding:"required"`
	Email     string `json:"email" binding:"required"`
	VisitorID string `json:"visitorId"`
}

// Confirm awards the code owner's one-time bonus for a referred email.
// Business non-events (already-used email) are 200s with awarded=false;
// only self-referral gets its own user-facing 400.
// POST /api/referral/confirm
func (h *ReferralHandler) Confirm(c *gin.Context) {
	var req confirmReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid"})
		return
	}
	awarded, err := h.referralSvc.ConfirmSignup(req.Code, req.Email, req.VisitorID)
	if errors.Is(err, service.ErrSelfReferral) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Nice try, you can't refer yourself :D"})
		return
	}
	if err != nil {
		log.Printf("[referral] confirm signup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "awarded": awarded})
}
