package router

import (
	"time"

	"launchpad/config"
	"launchpad/internal/handler"
	"launchpad/internal/middleware"
	"launchpad/internal/repository"
	"launchpad/internal/service"
	"launchpad/pkg/mailer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers onto a gin engine.
// rdb may be nil; rank lookups then skip the cache.
func Setup(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	clickRepo := repository.NewClickRepository(db)
	signupRepo := repository.NewSignupRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	// Services
	mail := mailer.NewLogSender()
	referralSvc := service.NewReferralService(userRepo, signupRepo, mail, cfg.App.BaseURL)
	clickSvc := service.NewClickService(clickRepo, userRepo)
	leaderboardSvc := service.NewLeaderboardService(userRepo, rdb, cfg.Redis.LeaderboardTTL)
	subSvc := service.NewSubscriptionService(subRepo)

	// Handlers
	referralHandler := handler.NewReferralHandler(referralSvc)
	redirectHandler := handler.NewRedirectHandler(clickSvc, cfg.App.BaseURL)
	positionHandler := handler.NewPositionHandler(leaderboardSvc)
	subscriptionHandler := handler.NewSubscriptionHandler(subSvc)

	// The referral redirect stays outside the API limiter: shared links get
	// bursts of traffic and the click path has its own dedup and daily cap.
	r.GET("/r/:code", redirectHandler.Redirect)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(cfg.Server.RateLimitPerMin, time.Minute)))
	{
		api.POST("/referral", referralHandler.Create)
		api.POST("/referral/confirm", referralHandler.Confirm)
		api.POST("/subscription", subscriptionHandler.Create)
		api.GET("/position", positionHandler.Get)
	}

	return r
}
