package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sravanthchary14/sustainshare/internal/models"
	"github.com/sravanthchary14/sustainshare/internal/service"
)

// PickupHandler serves pickup schedule CRUD.
type PickupHandler struct {
	pickups *service.PickupService
}

func NewPickupHandler(pickups *service.PickupService) *PickupHandler {
	return &PickupHandler{pickups: pickups}
}

func (h *PickupHandler) RegisterRoutes(router *gin.RouterGroup) {
	pickups := router.Group("/pickups")
	{
		pickups.POST("", h.SchedulePickup)
		pickups.GET("", h.GetAllPickups)
		pickups.GET("/count", h.GetTotalPickupsCount)
		pickups.GET("/:id", h.GetPickupByID)
		pickups.DELETE("/:id", h.DeletePickup)
	}
}

func (h *PickupHandler) SchedulePickup(c *gin.Context) {
	var pickup models.PickupSchedule
	if err := c.ShouldBindJSON(&pickup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.pickups.SchedulePickup(c.Request.Context(), &pickup)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule pickup"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *PickupHandler) GetAllPickups(c *gin.Context) {
	pickups, err := h.pickups.GetAllPickups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pickups"})
		return
	}
	c.JSON(http.StatusOK, pickups)
}

func (h *PickupHandler) GetPickupByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	pickup, err := h.pickups.GetPickupByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pickup not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pickup"})
		return
	}
	c.JSON(http.StatusOK, pickup)
}

func (h *PickupHandler) DeletePickup(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.pickups.DeletePickup(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pickup"})
		return
	}
	c.Status(http.StatusOK)
}

func (h *PickupHandler) GetTotalPickupsCount(c *gin.Context) {
	n, err := h.pickups.CountPickups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count pickups"})
		return
	}
	c.JSON(http.StatusOK, n)
}
