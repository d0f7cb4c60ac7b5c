package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/sravanthchary14/sustainshare/internal/models"
)

var demoUsers = []models.User{
	{
		Name:     "Demo Donor",
		Username: "demodonor",
		Email:    "donor@example.com",
		Phone:    "1111111111",
		Password: "donorpass",
		Role:     models.RoleDonor,
	},
	{
		Name:     "Demo Charity",
		Username: "democharity",
		Email:    "charity@example.com",
		Phone:    "2222222222",
		Password: "charitypass",
		Role:     models.RoleCharity,
	},
	{
		Name:     "Demo Admin",
		Username: "demoadmin",
		Email:    "admin@example.com",
		Phone:    "3333333333",
		Password: "adminpass",
		Role:     models.RoleAdmin,
	},
}

// SeedDemoUsers inserts one demo user per role unless a user with the same
// email or username already exists. Seeding is best effort: failures are
// logged and never abort startup.
func SeedDemoUsers(db *gorm.DB) {
	for _, u := range demoUsers {
		var count int64
		err := db.Model(&models.User{}).
			Where("email = ? OR username = ?", u.Email, u.Username).
			Count(&count).Error
		if err != nil {
			log.Printf("Demo user seeding failed for %s: %v", u.Username, err)
			continue
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("Demo user seeding failed for %s: %v", u.Username, err)
			continue
		}
		log.Printf("Demo %s user created", u.Role)
	}
}
