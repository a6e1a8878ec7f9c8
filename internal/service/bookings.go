package service

import (
	"context"
	"fmt"

	"mandir/internal/cache"
	"mandir/internal/models"
)

type BookingStore interface {
	List(ctx context.Context) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Booking, error)
	Create(ctx context.Context, b *models.Booking) error
}

type BookingService struct {
	repo  BookingStore
	store *cache.Store
}

func NewBookingService(repo BookingStore, store *cache.Store) *BookingService {
	return &BookingService{repo: repo, store: store}
}

// List serves the staff view of every booking.
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return cache.Resolve(ctx, s.store, cache.NewKey("bookings"), func(ctx context.Context) ([]models.Booking, error) {
		bookings, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list bookings: %w", err)
		}
		return bookings, nil
	})
}

// ListByUser returns the signed-in user's bookings. An empty userID means
// nobody is signed in, so the read resolves to nothing without touching
// the database.
func (s *BookingService) ListByUser(ctx context.Context, userID string, limit int) ([]models.Booking, error) {
	if userID == "" {
		return nil, nil
	}
	key := cache.NewKey("bookings", "user", userID, fmt.Sprint(limit))
	return cache.Resolve(ctx, s.store, key, func(ctx context.Context) ([]models.Booking, error) {
		bookings, err := s.repo.ListByUser(ctx, userID, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list bookings: %w", err)
		}
		return bookings, nil
	})
}

func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest, userID string) (*models.Booking, error) {
	booking := &models.Booking{
		DevoteeID:       req.DevoteeID,
		PoojaID:         req.PoojaID,
		UserID:          optional(userID),
		ScheduledDate:   req.ScheduledDate,
		ScheduledTime:   req.ScheduledTime,
		AmountPaid:      req.AmountPaid,
		SpecialRequests: optional(req.SpecialRequests),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.store.Invalidate(cache.NewKey("bookings"))
	return booking, nil
}
