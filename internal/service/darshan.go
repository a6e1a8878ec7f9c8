package service

import (
	"context"
	"fmt"
	"time"

	"mandir/internal/cache"
	"mandir/internal/models"
)

type DarshanStore interface {
	SlotsByDate(ctx context.Context, date string) ([]models.DarshanSlot, error)
	BookingsByUser(ctx context.Context, userID, today string) ([]models.DarshanBooking, error)
	Book(ctx context.Context, b *models.DarshanBooking) error
}

type DarshanService struct {
	repo  DarshanStore
	store *cache.Store
	now   func() time.Time
}

func NewDarshanService(repo DarshanStore, store *cache.Store) *DarshanService {
	return &DarshanService{repo: repo, store: store, now: time.Now}
}

func (s *DarshanService) SlotsByDate(ctx context.Context, date string) ([]models.DarshanSlot, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalid)
	}
	key := cache.NewKey("darshan_slots", date)
	return cache.Resolve(ctx, s.store, key, func(ctx context.Context) ([]models.DarshanSlot, error) {
		slots, err := s.repo.SlotsByDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("failed to list darshan slots: %w", err)
		}
		return slots, nil
	})
}

func (s *DarshanService) BookingsByUser(ctx context.Context, userID string) ([]models.DarshanBooking, error) {
	if userID == "" {
		return nil, nil
	}
	today := s.now().Format("2006-01-02")
	key := cache.NewKey("darshan_bookings", userID, today)
	return cache.Resolve(ctx, s.store, key, func(ctx context.Context) ([]models.DarshanBooking, error) {
		bookings, err := s.repo.BookingsByUser(ctx, userID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to list darshan bookings: %w", err)
		}
		return bookings, nil
	})
}

// Book claims a place in a slot. The capacity check lives in the database
// transaction, so two users racing for the last place cannot both win;
// repository.ErrSlotFull comes back for the loser.
func (s *DarshanService) Book(ctx context.Context, req *models.BookDarshanRequest, userID string) (*models.DarshanBooking, error) {
	booking := &models.DarshanBooking{
		SlotID: req.SlotID,
		UserID: userID,
	}

	if err := s.repo.Book(ctx, booking); err != nil {
		return nil, err
	}

	s.store.Invalidate(
		cache.NewKey("darshan_slots"),
		cache.NewKey("darshan_bookings", userID),
	)
	return booking, nil
}
