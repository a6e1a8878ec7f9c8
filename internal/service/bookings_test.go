package service

import (
	"context"
	"testing"

	"mandir/internal/cache"
	"mandir/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	bookings  []models.Booking
	listCalls int
	userCalls int
}

func (f *fakeBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	f.listCalls++
	return f.bookings, nil
}

func (f *fakeBookingStore) ListByUser(ctx context.Context, userID string, limit int) ([]models.Booking, error) {
	f.userCalls++
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, b)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeBookingStore) Create(ctx context.Context, b *models.Booking) error {
	b.ID = "b-new"
	b.Status = models.StatusScheduled
	f.bookings = append(f.bookings, *b)
	return nil
}

func TestListByUserAnonymousIsEmpty(t *testing.T) {
	repo := &fakeBookingStore{}
	svc := NewBookingService(repo, cache.NewStore(0))

	bookings, err := svc.ListByUser(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.Zero(t, repo.userCalls, "anonymous read must not touch the store")
}

func TestCreateBookingDefaultsToScheduled(t *testing.T) {
	repo := &fakeBookingStore{}
	svc := NewBookingService(repo, cache.NewStore(0))

	booking, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		DevoteeID:     "d1",
		PoojaID:       "p1",
		ScheduledDate: "2026-09-20",
		ScheduledTime: "08:30",
	}, "u1")
	require.NoError(t, err)

	assert.Equal(t, models.StatusScheduled, booking.Status)
	require.NotNil(t, booking.UserID)
	assert.Equal(t, "u1", *booking.UserID)
	assert.Nil(t, booking.SpecialRequests)
}

func TestCreateBookingRefreshesStaffList(t *testing.T) {
	repo := &fakeBookingStore{}
	svc := NewBookingService(repo, cache.NewStore(0))
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, first)

	_, err = svc.Create(ctx, &models.CreateBookingRequest{
		DevoteeID:     "d1",
		PoojaID:       "p1",
		ScheduledDate: "2026-09-20",
		ScheduledTime: "08:30",
	}, "")
	require.NoError(t, err)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 2, repo.listCalls)
}
