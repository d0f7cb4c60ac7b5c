package database

import (
	"gorm.io/gorm"

	"github.com/sravanthchary14/sustainshare/internal/models"
)

// RunMigrations creates or updates the schema for every application model.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.DonationLog{},
		&models.PickupSchedule{},
	)
}
