package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sravanthchary14/sustainshare/internal/models"
	"github.com/sravanthchary14/sustainshare/internal/service"
)

// DonationHandler serves donation log CRUD, the aggregate counters, and the
// claim endpoint.
type DonationHandler struct {
	donations *service.DonationService
}

func NewDonationHandler(donations *service.DonationService) *DonationHandler {
	return &DonationHandler{donations: donations}
}

// RegisterRoutes wires the donation endpoints. claimLimiter, when non-nil,
// is applied to the claim route only.
func (h *DonationHandler) RegisterRoutes(router *gin.RouterGroup, claimLimiter gin.HandlerFunc) {
	donations := router.Group("/donations")
	{
		donations.GET("", h.GetAllDonations)
		donations.GET("/count", h.GetTotalDonationsCount)
		donations.GET("/claimed/count", h.GetClaimedFoodCount)
		donations.GET("/foodquantity/total", h.GetTotalFoodQuantity)
		donations.POST("", h.CreateDonationLog)
		donations.PUT("/:id", h.UpdateDonationLog)
		if claimLimiter != nil {
			donations.POST("/claim/:foodItemId", claimLimiter, h.ClaimDonation)
		} else {
			donations.POST("/claim/:foodItemId", h.ClaimDonation)
		}
	}
}

type claimRequest struct {
	CharityID *uint `json:"charityId"`
}

// ClaimDonation claims the food item for the requesting charity. Exactly one
// claim per item ever succeeds; every other attempt gets a 409.
func (h *DonationHandler) ClaimDonation(c *gin.Context) {
	foodItemID, ok := parseID(c, "foodItemId")
	if !ok {
		return
	}

	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CharityID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "charityId is required"})
		return
	}

	entry, err := h.donations.ClaimFood(c.Request.Context(), foodItemID, *req.CharityID)
	if err != nil {
		if errors.Is(err, service.ErrClaimConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Already claimed or invalid IDs"})
			return
		}
		log.Printf("Claim failed for food item %d: %v", foodItemID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim donation"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *DonationHandler) GetAllDonations(c *gin.Context) {
	logs, err := h.donations.GetAllDonations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *DonationHandler) CreateDonationLog(c *gin.Context) {
	var entry models.DonationLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.donations.CreateDonationLog(c.Request.Context(), &entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation log"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *DonationHandler) UpdateDonationLog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch models.DonationLog
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.donations.UpdateDonationLog(c.Request.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation log"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// The counter endpoints return bare numbers; the front end consumes them
// as plain values.

func (h *DonationHandler) GetTotalDonationsCount(c *gin.Context) {
	n, err := h.donations.CountDonations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count donations"})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *DonationHandler) GetClaimedFoodCount(c *gin.Context) {
	n, err := h.donations.CountClaimed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count claimed donations"})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *DonationHandler) GetTotalFoodQuantity(c *gin.Context) {
	total, err := h.donations.TotalFoodQuantity(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum food quantity"})
		return
	}
	c.JSON(http.StatusOK, total)
}

// parseID reads a numeric path parameter, answering 400 when it is not a
// valid id.
func parseID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}
