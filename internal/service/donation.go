package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sravanthchary14/sustainshare/internal/models"
)

// ErrClaimConflict is returned for every business rejection of a claim:
// unknown food item, unknown charity, or an item that is already claimed.
// The API boundary maps it to a single conflict response.
var ErrClaimConflict = errors.New("already claimed or invalid ids")

// DonationService owns DonationLog records and the claim workflow.
type DonationService struct {
	db *gorm.DB
}

// NewDonationService creates a new DonationService instance
func NewDonationService(db *gorm.DB) *DonationService {
	return &DonationService{db: db}
}

// forUpdate applies an exclusive row lock on postgres. sqlite has no
// SELECT ... FOR UPDATE; its single-writer transactions still serialize
// claims, but a concurrent loser there surfaces as SQLITE_BUSY (a 500 at
// the API) rather than the conflict response. The conflict contract is
// only guaranteed on postgres.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// ClaimFood marks the food item as claimed by the given charity. The whole
// operation runs in one transaction that locks the item's DonationLog row
// (or the FoodItem row when no log exists yet), so the already-claimed check
// and the write cannot interleave with a concurrent claim. At most one claim
// per food item ever succeeds; all others get ErrClaimConflict and leave no
// state behind.
func (s *DonationService) ClaimFood(ctx context.Context, foodItemID, charityID uint) (*models.DonationLog, error) {
	var claimed models.DonationLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.DonationLog
		err := forUpdate(tx).Where("food_item_id = ?", foodItemID).First(&entry).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// No log yet. FOR UPDATE cannot lock an absent row, so take the
			// food item's lock instead. While this claim waited for that
			// lock a competing one may have inserted the log and committed,
			// so the log lookup has to be repeated before deciding.
			var food models.FoodItem
			if err := forUpdate(tx).First(&food, foodItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrClaimConflict
				}
				return err
			}

			err := forUpdate(tx).Where("food_item_id = ?", foodItemID).First(&entry).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				// Still no log: build one in flight, inferring the donor
				// from the item's stored donor id when it resolves.
				entry = models.DonationLog{FoodItemID: &food.ID}
				if food.DonorID != nil {
					var donor models.User
					switch err := tx.First(&donor, *food.DonorID).Error; {
					case err == nil:
						entry.DonorID = &donor.ID
					case !errors.Is(err, gorm.ErrRecordNotFound):
						return err
					}
				}
			case err != nil:
				return err
			}
		case err != nil:
			return err
		}

		// The decision point. Only valid while the lock above is held.
		if entry.Claimed() {
			return ErrClaimConflict
		}

		var charity models.User
		if err := tx.First(&charity, charityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClaimConflict
			}
			return err
		}

		now := time.Now()
		entry.CharityID = &charity.ID
		entry.ClaimedAt = &now
		if err := tx.Omit(clause.Associations).Save(&entry).Error; err != nil {
			return err
		}

		return tx.Preload("Donor").Preload("Charity").Preload("FoodItem").
			First(&claimed, entry.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &claimed, nil
}

// CreateDonationLog inserts a donation log as sent. No uniqueness is
// enforced; callers that need one log per food item go through ClaimFood.
func (s *DonationService) CreateDonationLog(ctx context.Context, entry *models.DonationLog) (*models.DonationLog, error) {
	normalizeRefs(entry)
	if entry.DonatedAt == nil {
		now := time.Now()
		entry.DonatedAt = &now
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error; err != nil {
		return nil, err
	}
	return s.GetDonationByID(ctx, entry.ID)
}

// UpdateDonationLog applies a partial patch: every non-nil field of patch
// overwrites the stored value, nil fields are left unchanged.
func (s *DonationService) UpdateDonationLog(ctx context.Context, id uint, patch *models.DonationLog) (*models.DonationLog, error) {
	var existing models.DonationLog
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return nil, err
	}

	if patch.Donor != nil {
		existing.DonorID = &patch.Donor.ID
	}
	if patch.Charity != nil {
		existing.CharityID = &patch.Charity.ID
	}
	if patch.FoodItem != nil {
		existing.FoodItemID = &patch.FoodItem.ID
	}
	if patch.DonatedAt != nil {
		existing.DonatedAt = patch.DonatedAt
	}
	if patch.ClaimedAt != nil {
		existing.ClaimedAt = patch.ClaimedAt
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(&existing).Error; err != nil {
		return nil, err
	}
	return s.GetDonationByID(ctx, id)
}

// GetAllDonations returns every donation log with its associations loaded.
func (s *DonationService) GetAllDonations(ctx context.Context) ([]models.DonationLog, error) {
	var logs []models.DonationLog
	err := s.db.WithContext(ctx).
		Preload("Donor").Preload("Charity").Preload("FoodItem").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// GetDonationByID retrieves a donation log by ID
func (s *DonationService) GetDonationByID(ctx context.Context, id uint) (*models.DonationLog, error) {
	var entry models.DonationLog
	err := s.db.WithContext(ctx).
		Preload("Donor").Preload("Charity").Preload("FoodItem").
		First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteDonation deletes a donation log by ID
func (s *DonationService) DeleteDonation(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.DonationLog{}, id).Error
}

// CountDonations returns the total number of donation logs.
func (s *DonationService) CountDonations(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.DonationLog{}).Count(&n).Error
	return n, err
}

// CountClaimed returns the number of donation logs with a claim timestamp.
func (s *DonationService) CountClaimed(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.DonationLog{}).
		Where("claimed_at IS NOT NULL").Count(&n).Error
	return n, err
}

// TotalFoodQuantity sums the quantity of every food item referenced by a
// donation log. Recomputed on each call.
func (s *DonationService) TotalFoodQuantity(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.DonationLog{}).
		Joins("JOIN food_items ON food_items.id = donation_logs.food_item_id").
		Select("COALESCE(SUM(food_items.quantity), 0)").
		Scan(&total).Error
	return total, err
}

// normalizeRefs copies the ids of nested association objects (the wire format
// sends donor/charity/foodItem as {"id": n}) onto the foreign key columns.
func normalizeRefs(entry *models.DonationLog) {
	if entry.Donor != nil && entry.DonorID == nil {
		entry.DonorID = &entry.Donor.ID
	}
	if entry.Charity != nil && entry.CharityID == nil {
		entry.CharityID = &entry.Charity.ID
	}
	if entry.FoodItem != nil && entry.FoodItemID == nil {
		entry.FoodItemID = &entry.FoodItem.ID
	}
}
