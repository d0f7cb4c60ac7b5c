package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sravanthchary14/sustainshare/config"
	"github.com/sravanthchary14/sustainshare/internal/api"
	"github.com/sravanthchary14/sustainshare/internal/middleware"
)

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth          *api.AuthHandler
	Donations     *api.DonationHandler
	Food          *api.FoodHandler
	Users         *api.UserHandler
	Pickups       *api.PickupHandler
	Notifications *api.NotificationHandler
}

// SetupRouter configures the application routes. The enumerated API groups
// are open (the front end talks to them without a session); anything outside
// them requires a valid token. claimLimiter may be nil when Redis is not
// configured.
func SetupRouter(
	cfg *config.Config,
	h Handlers,
	validator middleware.TokenValidator,
	claimLimiter gin.HandlerFunc,
) *gin.Engine {
	router := gin.Default()

	// Cross-origin requests are allowed from the single trusted front end.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	apiGroup := router.Group("/api")

	h.Auth.RegisterRoutes(apiGroup)
	h.Donations.RegisterRoutes(apiGroup, claimLimiter)
	h.Food.RegisterRoutes(apiGroup)
	h.Users.RegisterRoutes(apiGroup)
	h.Pickups.RegisterRoutes(apiGroup)
	h.Notifications.RegisterRoutes(apiGroup)

	// Everything not listed above needs authentication.
	router.NoRoute(middleware.AuthMiddleware(validator), func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}
