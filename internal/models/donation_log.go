package models

import "time"

// DonationLog records the claim state of a food item. A row with both
// CharityID and ClaimedAt set means the item has been claimed; at most one
// such row may exist per food item, which the claim transaction enforces.
type DonationLog struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	DonorID    *uint      `json:"-"`
	Donor      *User      `gorm:"foreignKey:DonorID" json:"donor"`
	CharityID  *uint      `json:"-"`
	Charity    *User      `gorm:"foreignKey:CharityID" json:"charity"`
	FoodItemID *uint      `gorm:"index" json:"-"`
	FoodItem   *FoodItem  `gorm:"foreignKey:FoodItemID" json:"foodItem"`
	DonatedAt  *time.Time `json:"donatedAt"`
	ClaimedAt  *time.Time `json:"claimedAt"`
}

// Claimed reports whether the log represents a completed claim.
func (d *DonationLog) Claimed() bool {
	return d.CharityID != nil && d.ClaimedAt != nil
}
