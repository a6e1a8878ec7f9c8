package models

import (
	"time"
)

// User represents an authenticated account. Devotee records are separate:
// a devotee is a person in the temple register and may not have an account.
type User struct {
	ID           string     `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	LastLoggedIn *time.Time `json:"last_logged_in" db:"last_logged_in"`
}

// UserRole maps a user to one role. A user may hold several rows.
type UserRole struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Role      AppRole   `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Profile holds display preferences for an account
type Profile struct {
	ID                 string  `json:"id" db:"id"`
	UserID             string  `json:"user_id" db:"user_id"`
	DisplayName        *string `json:"display_name" db:"display_name"`
	Phone              *string `json:"phone" db:"phone"`
	LanguagePreference *string `json:"language_preference" db:"language_preference"`
}

// Devotee is a person in the temple register
type Devotee struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	ContactNumber string    `json:"contact_number" db:"contact_number"`
	Email         *string   `json:"email" db:"email"`
	Address       *string   `json:"address" db:"address"`
	City          *string   `json:"city" db:"city"`
	State         *string   `json:"state" db:"state"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Pooja is a ritual service offered by the temple
type Pooja struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     *string   `json:"description" db:"description"`
	DurationMinutes *int      `json:"duration_minutes" db:"duration_minutes"`
	BasePrice       *float64  `json:"base_price" db:"base_price"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Booking schedules one pooja for one devotee
type Booking struct {
	ID              string      `json:"id" db:"id"`
	DevoteeID       string      `json:"devotee_id" db:"devotee_id"`
	PoojaID         string      `json:"pooja_id" db:"pooja_id"`
	UserID          *string     `json:"user_id" db:"user_id"`
	ScheduledDate   string      `json:"scheduled_date" db:"scheduled_date"`
	ScheduledTime   string      `json:"scheduled_time" db:"scheduled_time"`
	AmountPaid      *float64    `json:"amount_paid" db:"amount_paid"`
	SpecialRequests *string     `json:"special_requests" db:"special_requests"`
	Status          PoojaStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`

	// Embedded relations, filled by joined selects
	Devotee *DevoteeRef `json:"devotees,omitempty"`
	Pooja   *PoojaRef   `json:"poojas,omitempty"`
}

// DevoteeRef is the embedded projection of a devotee inside related rows
type DevoteeRef struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
}

// PoojaRef is the embedded projection of a pooja inside related rows
type PoojaRef struct {
	Name      string   `json:"name"`
	BasePrice *float64 `json:"base_price"`
}

// Transaction is an append-only ledger row
type Transaction struct {
	ID              string          `json:"id" db:"id"`
	DevoteeID       string          `json:"devotee_id" db:"devotee_id"`
	Amount          float64         `json:"amount" db:"amount"`
	Type            TransactionType `json:"transaction_type" db:"transaction_type"`
	PaymentMethod   *string         `json:"payment_method" db:"payment_method"`
	ReferenceNumber *string         `json:"reference_number" db:"reference_number"`
	Description     *string         `json:"description" db:"description"`
	TransactionDate time.Time       `json:"transaction_date" db:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`

	Devotee *DevoteeRef `json:"devotees,omitempty"`
}

// DonationCampaign accumulates donations toward a target
type DonationCampaign struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   *string   `json:"description" db:"description"`
	ImageURL      *string   `json:"image_url" db:"image_url"`
	TargetAmount  float64   `json:"target_amount" db:"target_amount"`
	CurrentAmount float64   `json:"current_amount" db:"current_amount"`
	StartDate     string    `json:"start_date" db:"start_date"`
	EndDate       string    `json:"end_date" db:"end_date"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type Donation struct {
	ID               string    `json:"id" db:"id"`
	CampaignID       *string   `json:"campaign_id" db:"campaign_id"`
	UserID           *string   `json:"user_id" db:"user_id"`
	Amount           float64   `json:"amount" db:"amount"`
	DonorName        string    `json:"donor_name" db:"donor_name"`
	DonorEmail       *string   `json:"donor_email" db:"donor_email"`
	DonorPhone       *string   `json:"donor_phone" db:"donor_phone"`
	IsAnonymous      bool      `json:"is_anonymous" db:"is_anonymous"`
	PaymentMethod    *string   `json:"payment_method" db:"payment_method"`
	PaymentReference *string   `json:"payment_reference" db:"payment_reference"`
	PaymentStatus    string    `json:"payment_status" db:"payment_status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// Subscription is a recurring booking template
type Subscription struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	PoojaID         string    `json:"pooja_id" db:"pooja_id"`
	Frequency       Frequency `json:"frequency" db:"frequency"`
	StartDate       string    `json:"start_date" db:"start_date"`
	EndDate         *string   `json:"end_date" db:"end_date"`
	NextOccurrence  string    `json:"next_occurrence" db:"next_occurrence"`
	Amount          float64   `json:"amount" db:"amount"`
	SpecialRequests *string   `json:"special_requests" db:"special_requests"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`

	Pooja *PoojaRef `json:"poojas,omitempty"`
}

type FestivalEvent struct {
	ID              string    `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     *string   `json:"description" db:"description"`
	Location        *string   `json:"location" db:"location"`
	ImageURL        *string   `json:"image_url" db:"image_url"`
	EventDate       string    `json:"event_date" db:"event_date"`
	StartTime       *string   `json:"start_time" db:"start_time"`
	EndTime         *string   `json:"end_time" db:"end_time"`
	IsMajorFestival bool      `json:"is_major_festival" db:"is_major_festival"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type CommunityPost struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	Category   *string   `json:"category" db:"category"`
	IsApproved bool      `json:"is_approved" db:"is_approved"`
	LikesCount int       `json:"likes_count" db:"likes_count"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type DarshanSlot struct {
	ID              string    `json:"id" db:"id"`
	SlotDate        string    `json:"slot_date" db:"slot_date"`
	SlotTime        string    `json:"slot_time" db:"slot_time"`
	DurationMinutes *int      `json:"duration_minutes" db:"duration_minutes"`
	MaxBookings     int       `json:"max_bookings" db:"max_bookings"`
	CurrentBookings int       `json:"current_bookings" db:"current_bookings"`
	IsAvailable     bool      `json:"is_available" db:"is_available"`
	Price           *float64  `json:"price" db:"price"`
	MeetingLink     *string   `json:"meeting_link" db:"meeting_link"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type DarshanBooking struct {
	ID            string    `json:"id" db:"id"`
	SlotID        string    `json:"slot_id" db:"slot_id"`
	UserID        string    `json:"user_id" db:"user_id"`
	Status        string    `json:"status" db:"status"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	Slot *DarshanSlot `json:"virtual_darshan_slots,omitempty"`
}

type InventoryItem struct {
	ID           string     `json:"id" db:"id"`
	ItemName     string     `json:"item_name" db:"item_name"`
	Category     *string    `json:"category" db:"category"`
	Quantity     int        `json:"quantity" db:"quantity"`
	Unit         *string    `json:"unit" db:"unit"`
	PricePerUnit *float64   `json:"price_per_unit" db:"price_per_unit"`
	ReorderLevel *int       `json:"reorder_level" db:"reorder_level"`
	SupplierName *string    `json:"supplier_name" db:"supplier_name"`
	LastRestocked *time.Time `json:"last_restocked" db:"last_restocked"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
