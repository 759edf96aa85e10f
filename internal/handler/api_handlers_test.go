package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"launchpad/internal/models"
	"launchpad/internal/repository"
	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAPIEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	referralSvc := service.NewReferralService(userRepo, repository.NewSignupRepository(db), nil, "https://launch.example.com")
	leaderboardSvc := service.NewLeaderboardService(userRepo, nil, 0)
	subSvc := service.NewSubscriptionService(repository.NewSubscriptionRepository(db))

	referralHandler := NewReferralHandler(referralSvc)
	positionHandler := NewPositionHandler(leaderboardSvc)
	subscriptionHandler := NewSubscriptionHandler(subSvc)

	r := gin.New()
	r.POST("/api/referral", referralHandler.Create)
	r.POST("/api/referral/confirm", referralHandler.Confirm)
	r.POST("/api/subscription", subscriptionHandler.Create)
	r.GET("/api/position", positionHandler.Get)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReferralValidation(t *testing.T) {
	r, _ := newAPIEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/referral", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/referral", `{"email":"alice@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		OK       bool   `json:"ok"`
		Code     string `json:"code"`
		Existing bool   `json:"existing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Len(t, resp.Code, 8)
	assert.False(t, resp.Existing)

	w = doJSON(t, r, http.MethodPost, "/api/referral", `{"email":"alice@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var again struct {
		Code     string `json:"code"`
		Existing bool   `json:"existing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
	assert.True(t, again.Existing)
	assert.Equal(t, resp.Code, again.Code)
}

func TestConfirmReferralEndpoint(t *testing.T) {
	r, db := newAPIEngine(t)
	require.NoError(t, db.Create(&models.User{Email: "owner@example.com", ReferralCode: "OWNER234"}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/referral/confirm", `{"code":"OWNER234"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/referral/confirm", `{"code":"OWNER234","email":"friend@example.com","visitorId":"vid-1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"awarded":true}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/referral/confirm", `{"code":"OWNER234","email":"friend+again@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"awarded":false}`, w.Body.String())

	// self-referral is a user-facing 400, not a silent non-award
	w = doJSON(t, r, http.MethodPost, "/api/referral/confirm", `{"code":"OWNER234","email":"Owner+x@Example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "refer yourself")
}

func TestSubscriptionEndpoint(t *testing.T) {
	r, _ := newAPIEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/subscription", `{"email":"a@b.com","eventType":"wedding"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/subscription", `{"email":"a@b.com","eventType":"wedding","eventDate":"not-a-date"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/subscription", `{"email":"a@b.com","eventType":"wedding","eventDate":"2026-10-01"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"created":true}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/subscription", `{"email":"A+z@B.com","eventType":"party","eventDate":"2026-11-02T15:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"created":false}`, w.Body.String())
}

func TestPositionEndpoint(t *testing.T) {
	r, db := newAPIEngine(t)
	require.NoError(t, db.Create(&models.User{Email: "a@b.com", ReferralCode: "TOPCODE2", Points: 42}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/position", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/position?code=TOPCODE2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rank":1,"total":1,"points":42}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/position?code=NOPE", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rank":null,"total":1}`, w.Body.String())
}
