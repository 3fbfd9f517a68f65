package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreContacts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := &Contact{Name: "Ann", Email: "ann@example.com", Message: "hi", CreatedAt: time.Now().Add(-time.Hour).UTC()}
	require.NoError(t, s.CreateContact(ctx, older))
	assert.NotEmpty(t, older.ID)

	newer := &Contact{Name: "Bob", Email: "bob@example.com", Phone: "123", Message: "hello"}
	require.NoError(t, s.CreateContact(ctx, newer))
	assert.False(t, newer.CreatedAt.IsZero())
	assert.NotEqual(t, older.ID, newer.ID)

	got, err := s.ListContacts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bob", got[0].Name)
	assert.Equal(t, "123", got[0].Phone)
	assert.Equal(t, "Ann", got[1].Name)

	got, err = s.ListContacts(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteStoreSellers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seller := &Seller{
		SellerName:  "Acme",
		ProductName: "Soap",
		Category:    "Cosmetic",
		Email:       "acme@example.com",
		LogoURL:     "/uploads/sellers/1-logo.png",
	}
	require.NoError(t, s.CreateSeller(ctx, seller))
	require.NotEmpty(t, seller.ID)

	got, err := s.GetSeller(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, seller.SellerName, got.SellerName)
	assert.Equal(t, seller.ProductName, got.ProductName)
	assert.Equal(t, seller.LogoURL, got.LogoURL)
	assert.Empty(t, got.Phone)

	_, err = s.GetSeller(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
