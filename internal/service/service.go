package service

import (
	"errors"

	"mandir/internal/cache"
	"mandir/internal/config"
	"mandir/internal/repository"
)

// ErrInvalid marks a request the caller can fix; handlers map it to 400.
var ErrInvalid = errors.New("invalid request")

// ErrNotFound marks a missing record; handlers map it to 404.
var ErrNotFound = errors.New("not found")

type Services struct {
	Auth          *AuthService
	Devotees      *DevoteeService
	Poojas        *PoojaService
	Bookings      *BookingService
	Transactions  *TransactionService
	Donations     *DonationService
	Subscriptions *SubscriptionService
	Festivals     *FestivalService
	Community     *CommunityService
	Darshan       *DarshanService
	Inventory     *InventoryService
	Dashboard     *DashboardService
}

func NewServices(repos *repository.Repositories, store *cache.Store, cfg *config.Config) *Services {
	festivals := NewFestivalService(repos.Festivals, store)
	bookings := NewBookingService(repos.Bookings, store)
	subscriptions := NewSubscriptionService(repos.Subscriptions, store)
	donations := NewDonationService(repos.Donations, store)

	return &Services{
		Auth:          NewAuthService(repos.Users, cfg.JWTSecret, cfg.TokenTTLMin, cfg.BcryptCost),
		Devotees:      NewDevoteeService(repos.Devotees, store),
		Poojas:        NewPoojaService(repos.Poojas, store),
		Bookings:      bookings,
		Transactions:  NewTransactionService(repos.Transactions, store),
		Donations:     donations,
		Subscriptions: subscriptions,
		Festivals:     festivals,
		Community:     NewCommunityService(repos.Community, store),
		Darshan:       NewDarshanService(repos.Darshan, store),
		Inventory:     NewInventoryService(repos.Inventory, store),
		Dashboard:     NewDashboardService(bookings, subscriptions, festivals, donations),
	}
}

// optional converts an empty form value to a NULL column.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
