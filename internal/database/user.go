package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// ErrUsernameTaken is returned when creating a user with a username that
// already exists.
var ErrUsernameTaken = errors.New("username already exists")

// User represents a registered user.
// The password is stored as a salted one-way hash, never in plaintext.
// Users are never updated or deleted once created.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Favorites    []Favorite
}

// CreateUser inserts a new user with the given username and password hash.
// A duplicate username is reported as ErrUsernameTaken; the unique index
// makes this safe even when two registrations race.
func (c *Client) CreateUser(ctx context.Context, username, passwordHash string) (*User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := c.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns the user with the given username, or
// gorm.ErrRecordNotFound if no such user exists.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by username", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID returns the user with the given ID.
func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by ID", "error", err)
		}
		return nil, err
	}
	return &user, nil
}
