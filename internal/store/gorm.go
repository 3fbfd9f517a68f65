package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore implements Store on PostgreSQL through GORM.
type GormStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to databaseURL and migrates the schema.
func NewPostgresStore(databaseURL string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return NewGormStore(db)
}

// NewGormStore wraps an open GORM connection.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Contact{}, &Seller{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) CreateContact(ctx context.Context, c *Contact) error {
	fillDefaults(&c.ID, &c.CreatedAt)
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}

func (s *GormStore) ListContacts(ctx context.Context, limit int) ([]Contact, error) {
	if limit <= 0 {
		limit = 50
	}
	var contacts []Contact
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	return contacts, nil
}

func (s *GormStore) CreateSeller(ctx context.Context, seller *Seller) error {
	fillDefaults(&seller.ID, &seller.CreatedAt)
	if err := s.db.WithContext(ctx).Create(seller).Error; err != nil {
		return fmt.Errorf("failed to save seller: %w", err)
	}
	return nil
}

func (s *GormStore) GetSeller(ctx context.Context, id string) (*Seller, error) {
	var seller Seller
	err := s.db.WithContext(ctx).First(&seller, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}
	return &seller, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
