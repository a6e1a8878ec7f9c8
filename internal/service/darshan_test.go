package service

import (
	"context"
	"testing"

	"mandir/internal/cache"
	"mandir/internal/models"
	"mandir/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDarshanStore struct {
	slots        []models.DarshanSlot
	bookings     []models.DarshanBooking
	slotCalls    int
	bookingCalls int
}

func (f *fakeDarshanStore) SlotsByDate(ctx context.Context, date string) ([]models.DarshanSlot, error) {
	f.slotCalls++
	var out []models.DarshanSlot
	for _, s := range f.slots {
		if s.SlotDate == date && s.IsAvailable {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeDarshanStore) BookingsByUser(ctx context.Context, userID, today string) ([]models.DarshanBooking, error) {
	f.bookingCalls++
	var out []models.DarshanBooking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeDarshanStore) Book(ctx context.Context, b *models.DarshanBooking) error {
	for i := range f.slots {
		s := &f.slots[i]
		if s.ID != b.SlotID {
			continue
		}
		if !s.IsAvailable || s.CurrentBookings >= s.MaxBookings {
			return repository.ErrSlotFull
		}
		s.CurrentBookings++
		b.ID = "db-1"
		b.Status = "confirmed"
		b.PaymentStatus = "pending"
		f.bookings = append(f.bookings, *b)
		return nil
	}
	return repository.ErrSlotFull
}

func TestSlotsByDateRejectsBadDate(t *testing.T) {
	svc := NewDarshanService(&fakeDarshanStore{}, cache.NewStore(0))

	_, err := svc.SlotsByDate(context.Background(), "tomorrow")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestBookingsRequireIdentity(t *testing.T) {
	repo := &fakeDarshanStore{}
	svc := NewDarshanService(repo, cache.NewStore(0))

	bookings, err := svc.BookingsByUser(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.Zero(t, repo.bookingCalls, "anonymous read must not touch the store")
}

func TestBookClaimsCapacity(t *testing.T) {
	repo := &fakeDarshanStore{slots: []models.DarshanSlot{
		{ID: "s1", SlotDate: "2026-09-15", SlotTime: "08:00", MaxBookings: 1, IsAvailable: true},
	}}
	svc := NewDarshanService(repo, cache.NewStore(0))
	ctx := context.Background()

	booking, err := svc.Book(ctx, &models.BookDarshanRequest{SlotID: "s1"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, "pending", booking.PaymentStatus)

	// The single place is gone; the next claim loses
	_, err = svc.Book(ctx, &models.BookDarshanRequest{SlotID: "s1"}, "u2")
	assert.ErrorIs(t, err, repository.ErrSlotFull)
}

func TestBookRefreshesSlotListings(t *testing.T) {
	repo := &fakeDarshanStore{slots: []models.DarshanSlot{
		{ID: "s1", SlotDate: "2026-09-15", SlotTime: "08:00", MaxBookings: 10, IsAvailable: true},
	}}
	svc := NewDarshanService(repo, cache.NewStore(0))
	ctx := context.Background()

	slots, err := svc.SlotsByDate(ctx, "2026-09-15")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, 0, slots[0].CurrentBookings)

	_, err = svc.Book(ctx, &models.BookDarshanRequest{SlotID: "s1"}, "u1")
	require.NoError(t, err)

	slots, err = svc.SlotsByDate(ctx, "2026-09-15")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, 1, slots[0].CurrentBookings)
	assert.Equal(t, 2, repo.slotCalls)
}
