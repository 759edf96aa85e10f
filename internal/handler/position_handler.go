package handler

import (
	"log"
	"net/http"

	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

type PositionHandler struct {
	leaderboardSvc *service.LeaderboardService
}

func NewPositionHandler(leaderboardSvc *service.LeaderboardService) *PositionHandler {
	return &PositionHandler{leaderboardSvc: leaderboardSvc}
}

// Get returns the leaderboard position of a referral code. Unknown codes get
// rank:null with the total participant count.
// GET /api/position?code=XXXX
func (h *PositionHandler) Get(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code required"})
		return
	}
	pos, err := h.leaderboardSvc.PositionFor(c.Request.Context(), code)
	if err != nil {
		log.Printf("[position] lookup for %s: %v", code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, pos)
}
