package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sravanthchary14/sustainshare/internal/models"
	"github.com/sravanthchary14/sustainshare/internal/service"
)

// FoodHandler serves food item CRUD and the availability query.
type FoodHandler struct {
	food *service.FoodService
}

func NewFoodHandler(food *service.FoodService) *FoodHandler {
	return &FoodHandler{food: food}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	food := router.Group("/food")
	{
		food.POST("", h.AddFoodItem)
		food.GET("", h.GetAllFoodItems)
		food.GET("/available", h.GetAvailableFoodItems)
		food.GET("/:id", h.GetFoodByID)
		food.DELETE("/:id", h.DeleteFoodItem)
	}
}

func (h *FoodHandler) AddFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.food.AddFood(c.Request.Context(), &item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food item"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *FoodHandler) GetAllFoodItems(c *gin.Context) {
	items, err := h.food.GetAllFoodItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch food items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetAvailableFoodItems returns only the items charities can still claim.
func (h *FoodHandler) GetAvailableFoodItems(c *gin.Context) {
	items, err := h.food.GetAvailableFoodItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch available food items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetFoodByID answers a JSON null body for unknown ids rather than a 404;
// the front end relies on that shape.
func (h *FoodHandler) GetFoodByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := h.food.GetFoodByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch food item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *FoodHandler) DeleteFoodItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.food.DeleteFoodItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete food item"})
		return
	}
	c.Status(http.StatusOK)
}
