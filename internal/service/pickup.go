package service

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sravanthchary14/sustainshare/internal/models"
)

// PickupService handles pickup schedule bookkeeping. Plain CRUD, no
// cross-entity invariants.
type PickupService struct {
	db *gorm.DB
}

// NewPickupService creates a new PickupService instance
func NewPickupService(db *gorm.DB) *PickupService {
	return &PickupService{db: db}
}

// SchedulePickup creates a new pickup schedule entry.
func (s *PickupService) SchedulePickup(ctx context.Context, pickup *models.PickupSchedule) (*models.PickupSchedule, error) {
	if pickup.FoodItem != nil && pickup.FoodItemID == nil {
		pickup.FoodItemID = &pickup.FoodItem.ID
	}
	if pickup.Charity != nil && pickup.CharityID == nil {
		pickup.CharityID = &pickup.Charity.ID
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(pickup).Error; err != nil {
		return nil, err
	}
	return s.GetPickupByID(ctx, pickup.ID)
}

// GetAllPickups returns every pickup schedule with its associations loaded.
func (s *PickupService) GetAllPickups(ctx context.Context) ([]models.PickupSchedule, error) {
	var pickups []models.PickupSchedule
	err := s.db.WithContext(ctx).
		Preload("FoodItem").Preload("Charity").
		Find(&pickups).Error
	if err != nil {
		return nil, err
	}
	return pickups, nil
}

// GetPickupByID retrieves a pickup schedule by ID
func (s *PickupService) GetPickupByID(ctx context.Context, id uint) (*models.PickupSchedule, error) {
	var pickup models.PickupSchedule
	err := s.db.WithContext(ctx).
		Preload("FoodItem").Preload("Charity").
		First(&pickup, id).Error
	if err != nil {
		return nil, err
	}
	return &pickup, nil
}

// DeletePickup deletes a pickup schedule by ID
func (s *PickupService) DeletePickup(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.PickupSchedule{}, id).Error
}

// CountPickups returns the total number of pickup schedules.
func (s *PickupService) CountPickups(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.PickupSchedule{}).Count(&n).Error
	return n, err
}
