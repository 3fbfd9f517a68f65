// Package intake handles contact-form submissions and seller registrations.
package intake

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vistaar/vistaar/internal/mail"
	"github.com/vistaar/vistaar/internal/store"
	"github.com/vistaar/vistaar/internal/uploads"
)

const notifyTimeout = 30 * time.Second

// ValidationError lists the required fields that were empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func required(fields ...[2]string) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

type ContactInput struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email" binding:"omitempty,email"`
	Phone   string `form:"phone" json:"phone"`
	Message string `form:"message" json:"message"`
}

type SellerInput struct {
	SellerName  string `form:"sellerName" json:"sellerName"`
	ProductName string `form:"productName" json:"productName"`
	Category    string `form:"category" json:"category"`
	Email       string `form:"email" json:"email" binding:"omitempty,email"`
	Phone       string `form:"phone" json:"phone"`
}

// Upload is an optional file sent with a form.
type Upload struct {
	Filename string
	Body     io.Reader
}

// Service persists intake records and fires operator notifications.
type Service struct {
	store    store.Store
	notifier mail.Notifier
	files    *uploads.Dir
	log      zerolog.Logger

	wg sync.WaitGroup
}

func NewService(st store.Store, notifier mail.Notifier, files *uploads.Dir) *Service {
	if notifier == nil {
		notifier = mail.Nop{}
	}
	return &Service{
		store:    st,
		notifier: notifier,
		files:    files,
		log:      log.With().Str("component", "intake").Logger(),
	}
}

// SubmitContact stores a contact submission and notifies the operator in the
// background. A failed notification is logged and never fails the call.
func (s *Service) SubmitContact(ctx context.Context, in ContactInput) (*store.Contact, error) {
	err := required(
		[2]string{"name", in.Name},
		[2]string{"email", in.Email},
		[2]string{"message", in.Message},
	)
	if err != nil {
		return nil, err
	}

	contact := &store.Contact{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}
	if err := s.store.CreateContact(ctx, contact); err != nil {
		return nil, err
	}

	s.wg.Add(1)
	go func(c store.Contact) {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.NotifyContact(ctx, c); err != nil {
			s.log.Warn().Err(err).Str("contact", c.ID).Msg("contact notification failed")
			return
		}
		s.log.Debug().Str("contact", c.ID).Msg("contact notification sent")
	}(*contact)

	return contact, nil
}

// RegisterSeller stores a seller and its optional logo.
func (s *Service) RegisterSeller(ctx context.Context, in SellerInput, logo *Upload) (*store.Seller, error) {
	err := required(
		[2]string{"sellerName", in.SellerName},
		[2]string{"productName", in.ProductName},
		[2]string{"category", in.Category},
	)
	if err != nil {
		return nil, err
	}

	seller := &store.Seller{
		SellerName:  strings.TrimSpace(in.SellerName),
		ProductName: strings.TrimSpace(in.ProductName),
		Category:    strings.TrimSpace(in.Category),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
	}
	if logo != nil {
		stored, err := s.files.SaveUpload(uploads.SellersDir, logo.Filename, logo.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to store seller logo: %w", err)
		}
		seller.LogoURL = stored.URL
	}
	if err := s.store.CreateSeller(ctx, seller); err != nil {
		return nil, err
	}

	s.log.Info().Str("seller", seller.ID).Str("name", seller.SellerName).Msg("seller registered")
	return seller, nil
}

// Wait blocks until background notifications have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}
