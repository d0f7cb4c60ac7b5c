package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sravanthchary14/sustainshare/config"
	"github.com/sravanthchary14/sustainshare/internal/api"
	"github.com/sravanthchary14/sustainshare/internal/database"
	"github.com/sravanthchary14/sustainshare/internal/middleware"
	"github.com/sravanthchary14/sustainshare/internal/router"
	"github.com/sravanthchary14/sustainshare/internal/service"
)

// Server represents the HTTP server
type Server struct {
	http *http.Server
	db   *gorm.DB
}

// New wires the database, services, handlers and router into a ready server.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(db); err != nil {
		return nil, err
	}

	// Demo data is best effort and never blocks startup.
	database.SeedDemoUsers(db)

	var claimLimiter gin.HandlerFunc
	if cfg.RedisAddr != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		} else {
			limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
				Window:    time.Minute,
				Limit:     60,
				KeyPrefix: "ratelimit:claim",
			})
			claimLimiter = limiter.Middleware()
		}
	}

	donationSvc := service.NewDonationService(db)
	foodSvc := service.NewFoodService(db)
	userSvc := service.NewUserService(db)
	pickupSvc := service.NewPickupService(db)
	notificationSvc := service.NewNotificationService(donationSvc, userSvc)
	authSvc := service.NewAuthService(cfg.JWTSecret)

	handlers := router.Handlers{
		Auth:          api.NewAuthHandler(userSvc, authSvc),
		Donations:     api.NewDonationHandler(donationSvc),
		Food:          api.NewFoodHandler(foodSvc),
		Users:         api.NewUserHandler(userSvc),
		Pickups:       api.NewPickupHandler(pickupSvc),
		Notifications: api.NewNotificationHandler(notificationSvc),
	}

	engine := router.SetupRouter(cfg, handlers, authSvc, claimLimiter)

	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
		db: db,
	}, nil
}

// Start starts the server
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
