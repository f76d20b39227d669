package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var _ DB = (*Client)(nil) // Ensure Client implements DB

// DB defines the interface for database operations.
type DB interface {
	// User management
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)

	// Favorites
	ListFavorites(ctx context.Context, userID uint) ([]Favorite, error)
	FavoriteExists(ctx context.Context, userID uint, spot string) (bool, error)
	AddFavorite(ctx context.Context, userID uint, spot string) (*Favorite, error)
	RemoveFavorite(ctx context.Context, userID uint, spot string) (bool, error)

	// Statistics
	CountUsers(ctx context.Context) (int64, error)
	CountFavorites(ctx context.Context) (int64, error)

	// Utility
	Close() error
}

// Client wraps the gorm.DB instance.
type Client struct {
	db *gorm.DB
}

// New creates a new database connection and performs migrations.
func New(dbpath string) (*Client, error) {
	if dir := filepath.Dir(dbpath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbpath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// SQLite only supports a single writer. A single connection also keeps
	// in-memory databases on one schema.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&User{},
		&Favorite{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Client{db: db}, nil
}

// Close closes the underlying database connection.
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CountUsers returns the total number of registered users.
func (c *Client) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountFavorites returns the total number of favorite rows across all users.
func (c *Client) CountFavorites(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&Favorite{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}
