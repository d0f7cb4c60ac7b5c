package models

// User roles as stored in the role column.
const (
	RoleDonor   = "Donor"
	RoleCharity = "Charity"
	RoleAdmin   = "Admin"
)

type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"uniqueIndex;not null" json:"phone"`
	// Stored and compared as plaintext, matching the existing deployment.
	// Known weakness; hashing would break every account already in the table.
	Password string `gorm:"not null" json:"password"`
	Role     string `gorm:"not null" json:"role"`
}
