package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sravanthchary14/sustainshare/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService handles user registration and lookups.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService instance
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register inserts the user unconditionally. Uniqueness is checked by the
// caller via IsUsernameTaken/IsEmailTaken before registering; the window
// between check and insert is an accepted limitation.
func (s *UserService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// IsUsernameTaken reports whether any user has the given username.
func (s *UserService) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).Count(&n).Error
	return n > 0, err
}

// IsEmailTaken reports whether any user has the given email.
func (s *UserService) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

// GetAllUsers returns all users
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate looks the user up by email and compares the password by plain
// equality, trimming whitespace from both inputs. Passwords are stored in
// plaintext (known weakness, kept for compatibility with existing rows).
// Returns ErrInvalidCredentials on any mismatch.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if user.Password == "" || user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// CountUsers returns the total number of registered users.
func (s *UserService) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}
