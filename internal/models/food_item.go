package models

// FoodItem is a surplus food posting. DonorID is a soft reference to the
// posting user; it is not enforced as a foreign key.
type FoodItem struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	PickupLocation string `json:"pickupLocation"`
	ExpiryTime     string `json:"expiryTime"`
	DonorPhone     string `json:"donorPhone"`
	DonorID        *uint  `json:"donorId"`
}
