package store

import (
	"context"
	"fmt"

	"github.com/labkeep-dev/labkeep/internal/models"
	"gorm.io/gorm"
)

// BookingStore persists bookings. Listing and deletion come in
// all-rows and owner-scoped flavors; the handler picks one based on
// the caller's role.
type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

func (s *BookingStore) List(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingStore) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingStore) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if booking.UserID == 0 {
		return models.Booking{}, fmt.Errorf("booking user id is required: %w", ErrValidation)
	}
	if len(booking.Date) != 10 {
		return models.Booking{}, fmt.Errorf("booking date %q is not a YYYY-MM-DD date: %w", booking.Date, ErrValidation)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&booking).Error
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// Delete removes a booking regardless of owner. Admin-only callers.
func (s *BookingStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteOwned removes a booking only if userID owns it. A booking that
// exists but belongs to someone else reports not-found, so the caller
// learns nothing about other users' bookings.
func (s *BookingStore) DeleteOwned(ctx context.Context, id, userID uint) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	return nil
}
