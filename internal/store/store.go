// Package store persists contact submissions and seller registrations.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Contact is a contact-form submission.
type Contact struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Seller is a registered seller and the product they signed up with.
type Seller struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	SellerName  string    `json:"sellerName" gorm:"not null"`
	ProductName string    `json:"productName" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store defines persistence for intake records. Create methods fill in ID
// and CreatedAt when they are empty.
type Store interface {
	CreateContact(ctx context.Context, c *Contact) error
	ListContacts(ctx context.Context, limit int) ([]Contact, error)
	CreateSeller(ctx context.Context, s *Seller) error
	GetSeller(ctx context.Context, id string) (*Seller, error)
	Close() error
}
