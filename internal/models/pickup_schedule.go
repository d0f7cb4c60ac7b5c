package models

import "time"

// PickupSchedule statuses are free text by convention: "Scheduled",
// "Completed", "Missed".
type PickupSchedule struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	ScheduledTime *time.Time `json:"scheduledTime"`
	Status        string     `json:"status"`
	FoodItemID    *uint      `json:"-"`
	FoodItem      *FoodItem  `gorm:"foreignKey:FoodItemID" json:"foodItem"`
	CharityID     *uint      `json:"-"`
	Charity       *User      `gorm:"foreignKey:CharityID" json:"charity"`
}
