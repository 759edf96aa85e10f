package handler

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"launchpad/internal/domain"
	"launchpad/internal/service"
	"launchpad/pkg/fingerprint"

	"github.com/gin-gonic/gin"
)

type RedirectHandler struct {
	clickSvc *service.ClickService
	baseURL  string
}

func NewRedirectHandler(clickSvc *service.ClickService, baseURL string) *RedirectHandler {
	return &RedirectHandler{clickSvc: clickSvc, baseURL: baseURL}
}

// Redirect attributes a referral link visit and sends the visitor to the
// landing page with the code attached. The redirect and the vid cookie are
// issued no matter what attribution decided, even on storage errors.
// GET /r/:code
func (h *RedirectHandler) Redirect(c *gin.Context) {
	code := c.Param("code")

	vid, err := c.Cookie(domain.VisitorCookieName)
	if err != nil || vid == "" {
		vid = fingerprint.NewVisitorID()
	}

	fp := fingerprint.New(clientIP(c), c.GetHeader("User-Agent"), vid)
	if _, err := h.clickSvc.Attribute(code, fp); err != nil {
		log.Printf("[redirect] attribute click for %s: %v", code, err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(domain.VisitorCookieName, vid, domain.VisitorCookieMaxAge, "/", "", true, true)
	c.Redirect(http.StatusFound, h.baseURL+"/?ref="+url.QueryEscape(code))
}

// clientIP prefers proxy-injected headers over the socket address, in the
// order the edge sets them.
func clientIP(c *gin.Context) string {
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			xff = xff[:i]
		}
		return strings.TrimSpace(xff)
	}
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}
	return c.ClientIP()
}
