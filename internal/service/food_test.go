package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sravanthchary14/sustainshare/internal/models"
	"github.com/sravanthchary14/sustainshare/internal/service"
	"github.com/sravanthchary14/sustainshare/internal/testhelpers"
)

func TestGetAvailableFoodItems(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	foodSvc := service.NewFoodService(db)
	donationSvc := service.NewDonationService(db)
	ctx := context.Background()

	donor := testhelpers.CreateTestUser(t, db, models.RoleDonor)
	charity := testhelpers.CreateTestUser(t, db, models.RoleCharity)

	claimed := testhelpers.CreateTestFoodItem(t, db, &donor.ID)
	unclaimed := testhelpers.CreateTestFoodItem(t, db, &donor.ID)
	logged := testhelpers.CreateTestFoodItem(t, db, &donor.ID)

	// A log without a completed claim must not hide the item.
	now := time.Now()
	require.NoError(t, db.Create(&models.DonationLog{
		DonorID:    &donor.ID,
		FoodItemID: &logged.ID,
		DonatedAt:  &now,
	}).Error)

	_, err := donationSvc.ClaimFood(ctx, claimed.ID, charity.ID)
	require.NoError(t, err)

	available, err := foodSvc.GetAvailableFoodItems(ctx)
	require.NoError(t, err)

	ids := make([]uint, 0, len(available))
	for _, item := range available {
		ids = append(ids, item.ID)
	}
	assert.Contains(t, ids, unclaimed.ID)
	assert.Contains(t, ids, logged.ID)
	assert.NotContains(t, ids, claimed.ID)
}

func TestDeleteFoodItemCascadesToDonationLogs(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	foodSvc := service.NewFoodService(db)
	donationSvc := service.NewDonationService(db)
	ctx := context.Background()

	donor := testhelpers.CreateTestUser(t, db, models.RoleDonor)
	charity := testhelpers.CreateTestUser(t, db, models.RoleCharity)
	food := testhelpers.CreateTestFoodItem(t, db, &donor.ID)
	other := testhelpers.CreateTestFoodItem(t, db, &donor.ID)

	_, err := donationSvc.ClaimFood(ctx, food.ID, charity.ID)
	require.NoError(t, err)
	_, err = donationSvc.ClaimFood(ctx, other.ID, charity.ID)
	require.NoError(t, err)

	require.NoError(t, foodSvc.DeleteFoodItem(ctx, food.ID))

	item, err := foodSvc.GetFoodByID(ctx, food.ID)
	require.NoError(t, err)
	assert.Nil(t, item)

	var orphans int64
	require.NoError(t, db.Model(&models.DonationLog{}).
		Where("food_item_id = ?", food.ID).Count(&orphans).Error)
	assert.Zero(t, orphans, "no donation log may survive its food item")

	// Logs for other items are untouched.
	var remaining int64
	require.NoError(t, db.Model(&models.DonationLog{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}

func TestGetFoodByIDUnknownReturnsNil(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	foodSvc := service.NewFoodService(db)

	item, err := foodSvc.GetFoodByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestAddFoodAndList(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	foodSvc := service.NewFoodService(db)
	ctx := context.Background()

	donor := testhelpers.CreateTestUser(t, db, models.RoleDonor)
	created, err := foodSvc.AddFood(ctx, &models.FoodItem{
		Name:           "Bread",
		Quantity:       4,
		PickupLocation: "Bakery on 5th",
		ExpiryTime:     "today 6pm",
		DonorPhone:     donor.Phone,
		DonorID:        &donor.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	items, err := foodSvc.GetAllFoodItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bread", items[0].Name)
}
