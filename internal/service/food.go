package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sravanthchary14/sustainshare/internal/models"
)

// FoodService handles food item operations
type FoodService struct {
	db *gorm.DB
}

// NewFoodService creates a new FoodService instance
func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// AddFood creates a new food item
func (s *FoodService) AddFood(ctx context.Context, item *models.FoodItem) (*models.FoodItem, error) {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// GetAllFoodItems returns every posted food item.
func (s *FoodService) GetAllFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetAvailableFoodItems returns food items with no successful claim: items
// for which no donation log has both a charity and a claim timestamp set.
func (s *FoodService) GetAvailableFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := s.db.WithContext(ctx).
		Where(`NOT EXISTS (
			SELECT 1 FROM donation_logs d
			WHERE d.food_item_id = food_items.id
			  AND d.charity_id IS NOT NULL
			  AND d.claimed_at IS NOT NULL
		)`).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetFoodByID returns the food item, or nil when no item has that id.
func (s *FoodService) GetFoodByID(ctx context.Context, id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteFoodItem removes a food item. Donation logs referencing the item are
// deleted first so no orphaned references remain.
func (s *FoodService) DeleteFoodItem(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_item_id = ?", id).Delete(&models.DonationLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FoodItem{}, id).Error
	})
}
