package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sravanthchary14/sustainshare/internal/models"
)

// SetupTestDatabase opens an in-memory sqlite database with the full schema.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Each sqlite :memory: connection is its own database; pin the pool to
	// one connection so every query sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.DonationLog{},
		&models.PickupSchedule{},
	))

	return db
}

// CreateTestUser inserts a user with unique identity fields and the given role.
func CreateTestUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	user := &models.User{
		Name:     "Test " + role + " " + suffix,
		Username: "user_" + suffix,
		Email:    suffix + "@example.com",
		Phone:    suffix,
		Password: "pass123",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestFoodItem inserts a food item, optionally referencing a donor.
func CreateTestFoodItem(t *testing.T, db *gorm.DB, donorID *uint) *models.FoodItem {
	t.Helper()

	item := &models.FoodItem{
		Name:           "Rice " + uuid.NewString()[:8],
		Quantity:       10,
		PickupLocation: "12 Main St",
		ExpiryTime:     "tomorrow evening",
		DonorPhone:     "5550001111",
		DonorID:        donorID,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}
