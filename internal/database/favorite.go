package database

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// ErrDuplicateFavorite is returned when a user already has the spot in their
// favorites.
var ErrDuplicateFavorite = errors.New("favorite already exists")

// Favorite is a user-specific bookmark of a surf spot.
// The composite unique index keeps concurrent adds from producing duplicate
// rows for the same user and spot. No DeletedAt column: favorites are
// deleted for real, so a removed spot can be added again.
type Favorite struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_spot"`
	Spot      string `gorm:"not null;uniqueIndex:idx_user_spot"`
}

// ListFavorites returns the favorites of a user in insertion order.
func (c *Client) ListFavorites(ctx context.Context, userID uint) ([]Favorite, error) {
	var favorites []Favorite
	if err := c.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favorites).Error; err != nil {
		log.Error("failed to list favorites", "error", err)
		return nil, err
	}
	return favorites, nil
}

// FavoriteExists reports whether the user already has the spot in their
// favorites.
func (c *Client) FavoriteExists(ctx context.Context, userID uint, spot string) (bool, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&Favorite{}).
		Where("user_id = ? AND spot = ?", userID, spot).
		Count(&count).Error; err != nil {
		log.Error("failed to check favorite", "error", err)
		return false, err
	}
	return count > 0, nil
}

// AddFavorite inserts a favorite for the user. A duplicate (user, spot) pair
// is reported as ErrDuplicateFavorite.
func (c *Client) AddFavorite(ctx context.Context, userID uint, spot string) (*Favorite, error) {
	favorite := Favorite{
		UserID: userID,
		Spot:   spot,
	}
	if err := c.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateFavorite
		}
		log.Error("failed to add favorite", "error", err)
		return nil, err
	}
	return &favorite, nil
}

// RemoveFavorite deletes the favorite for the given user and spot.
// It returns false if no row was deleted; absence is not an error.
func (c *Client) RemoveFavorite(ctx context.Context, userID uint, spot string) (bool, error) {
	res := c.db.WithContext(ctx).
		Where("user_id = ? AND spot = ?", userID, spot).
		Delete(&Favorite{})
	if res.Error != nil {
		log.Error("failed to remove favorite", "error", res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
