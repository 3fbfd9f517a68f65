package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens (creating if needed) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS contacts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts(created_at);

	CREATE TABLE IF NOT EXISTS sellers (
		id TEXT PRIMARY KEY,
		seller_name TEXT NOT NULL,
		product_name TEXT NOT NULL,
		category TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		logo_url TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func fillDefaults(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = uuid.New().String()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
}

func (s *SQLiteStore) CreateContact(ctx context.Context, c *Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fillDefaults(&c.ID, &c.CreatedAt)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contacts (id, name, email, phone, message, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Phone, c.Message, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}

// ListContacts returns the newest submissions first.
func (s *SQLiteStore) ListContacts(ctx context.Context, limit int) ([]Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, phone, message, created_at FROM contacts ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *SQLiteStore) CreateSeller(ctx context.Context, seller *Seller) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fillDefaults(&seller.ID, &seller.CreatedAt)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sellers (id, seller_name, product_name, category, email, phone, logo_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seller.ID, seller.SellerName, seller.ProductName, seller.Category,
		seller.Email, seller.Phone, seller.LogoURL, seller.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save seller: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetSeller(ctx context.Context, id string) (*Seller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var seller Seller
	err := s.db.QueryRowContext(ctx,
		`SELECT id, seller_name, product_name, category, email, phone, logo_url, created_at FROM sellers WHERE id = ?`,
		id,
	).Scan(&seller.ID, &seller.SellerName, &seller.ProductName, &seller.Category,
		&seller.Email, &seller.Phone, &seller.LogoURL, &seller.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}
	return &seller, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
