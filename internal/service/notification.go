package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sravanthchary14/sustainshare/internal/models"
)

// Notification is a synthetic activity feed entry. Nothing is persisted;
// feeds are recomputed from donation logs and users on every request.
type Notification struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Message     string     `json:"message"`
	FoodName    string     `json:"foodName,omitempty"`
	DonorName   string     `json:"donorName,omitempty"`
	CharityName string     `json:"charityName,omitempty"`
	UserName    string     `json:"userName,omitempty"`
	UserRole    string     `json:"userRole,omitempty"`
	Timestamp   *time.Time `json:"timestamp"`
	IsRead      bool       `json:"isRead"`
}

// NotificationService assembles role-specific feeds.
type NotificationService struct {
	donations *DonationService
	users     *UserService
}

// NewNotificationService creates a new NotificationService instance
func NewNotificationService(donations *DonationService, users *UserService) *NotificationService {
	return &NotificationService{donations: donations, users: users}
}

// FeedForUser builds the activity feed for the given user. Unknown users and
// unknown roles get an empty feed.
func (s *NotificationService) FeedForUser(ctx context.Context, userID uint) ([]Notification, error) {
	feed := []Notification{}

	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return feed, nil
	}
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case models.RoleCharity:
		logs, err := s.donations.GetAllDonations(ctx)
		if err != nil {
			return nil, err
		}
		for _, entry := range logs {
			if entry.FoodItem == nil || entry.Donor == nil {
				continue
			}
			feed = append(feed, Notification{
				ID:        fmt.Sprintf("food_posted_%d", entry.ID),
				Type:      "food_posted",
				Message:   fmt.Sprintf("New food posted: %s by %s", entry.FoodItem.Name, entry.Donor.Name),
				FoodName:  entry.FoodItem.Name,
				DonorName: entry.Donor.Name,
				Timestamp: entry.DonatedAt,
			})
		}

	case models.RoleDonor:
		logs, err := s.donations.GetAllDonations(ctx)
		if err != nil {
			return nil, err
		}
		for _, entry := range logs {
			if entry.Donor == nil || entry.Donor.ID != userID || entry.Charity == nil || entry.FoodItem == nil {
				continue
			}
			feed = append(feed, Notification{
				ID:          fmt.Sprintf("food_claimed_%d", entry.ID),
				Type:        "food_claimed",
				Message:     fmt.Sprintf("Your food '%s' was claimed by %s", entry.FoodItem.Name, entry.Charity.Name),
				FoodName:    entry.FoodItem.Name,
				CharityName: entry.Charity.Name,
				Timestamp:   entry.DonatedAt,
			})
		}

	case models.RoleAdmin:
		users, err := s.users.GetAllUsers(ctx)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		for _, u := range users {
			if u.ID == userID {
				continue
			}
			feed = append(feed, Notification{
				ID:        fmt.Sprintf("user_%d", u.ID),
				Type:      "new_user",
				Message:   fmt.Sprintf("New user registered: %s (%s)", u.Name, u.Role),
				UserName:  u.Name,
				UserRole:  u.Role,
				Timestamp: &now,
			})
		}

		logs, err := s.donations.GetAllDonations(ctx)
		if err != nil {
			return nil, err
		}
		for _, entry := range logs {
			if entry.FoodItem == nil || entry.Donor == nil {
				continue
			}
			feed = append(feed, Notification{
				ID:        fmt.Sprintf("donation_%d", entry.ID),
				Type:      "food_donated",
				Message:   fmt.Sprintf("Food donated: %s by %s", entry.FoodItem.Name, entry.Donor.Name),
				FoodName:  entry.FoodItem.Name,
				DonorName: entry.Donor.Name,
				Timestamp: entry.DonatedAt,
			})
			if entry.Charity != nil {
				feed = append(feed, Notification{
					ID:          fmt.Sprintf("claim_%d", entry.ID),
					Type:        "food_claimed",
					Message:     fmt.Sprintf("Food claimed: %s by %s", entry.FoodItem.Name, entry.Charity.Name),
					FoodName:    entry.FoodItem.Name,
					CharityName: entry.Charity.Name,
					Timestamp:   entry.DonatedAt,
				})
			}
		}
	}

	return feed, nil
}
