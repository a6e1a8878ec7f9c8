package repository

import (
	"errors"

	"mandir/internal/database"
)

// ErrSlotFull is returned when a darshan slot has no remaining capacity
var ErrSlotFull = errors.New("darshan slot is fully booked")

type Repositories struct {
	Users         *UserRepository
	Devotees      *DevoteeRepository
	Poojas        *PoojaRepository
	Bookings      *BookingRepository
	Transactions  *TransactionRepository
	Donations     *DonationRepository
	Subscriptions *SubscriptionRepository
	Festivals     *FestivalRepository
	Community     *CommunityRepository
	Darshan       *DarshanRepository
	Inventory     *InventoryRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Devotees:      NewDevoteeRepository(db),
		Poojas:        NewPoojaRepository(db),
		Bookings:      NewBookingRepository(db),
		Transactions:  NewTransactionRepository(db),
		Donations:     NewDonationRepository(db),
		Subscriptions: NewSubscriptionRepository(db),
		Festivals:     NewFestivalRepository(db),
		Community:     NewCommunityRepository(db),
		Darshan:       NewDarshanRepository(db),
		Inventory:     NewInventoryRepository(db),
	}
}
