package service

import (
	"context"
	"fmt"

	"mandir/internal/models"
)

// Panel limits keep the home screen to the next few items of each kind.
const (
	upcomingBookingsLimit  = 5
	upcomingFestivalsLimit = 3
	activeCampaignsLimit   = 3
)

// DashboardService composes the signed-in user's home screen from the
// feature services, so every panel goes through the same cached reads the
// feature screens use.
type DashboardService struct {
	bookings      *BookingService
	subscriptions *SubscriptionService
	festivals     *FestivalService
	donations     *DonationService
}

func NewDashboardService(bookings *BookingService, subscriptions *SubscriptionService, festivals *FestivalService, donations *DonationService) *DashboardService {
	return &DashboardService{
		bookings:      bookings,
		subscriptions: subscriptions,
		festivals:     festivals,
		donations:     donations,
	}
}

// Load returns the dashboard. The user panels resolve to empty when nobody
// is signed in; the public panels load either way.
func (s *DashboardService) Load(ctx context.Context, userID string) (*models.DashboardResponse, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID, upcomingBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings panel: %w", err)
	}

	subs, err := s.subscriptions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions panel: %w", err)
	}

	festivals, err := s.festivals.Upcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load festivals panel: %w", err)
	}

	campaigns, err := s.donations.ActiveCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaigns panel: %w", err)
	}

	return &models.DashboardResponse{
		UpcomingBookings:  bookings,
		Subscriptions:     subs,
		UpcomingFestivals: head(festivals, upcomingFestivalsLimit),
		ActiveCampaigns:   head(campaigns, activeCampaignsLimit),
	}, nil
}

// head trims a cached full list down to a panel-sized view
func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
