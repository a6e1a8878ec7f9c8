package models

// RegisterRequest creates an account plus its default devotee role
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt string    `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Roles     []AppRole `json:"roles"`
}

type CreateDevoteeRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactNumber string `json:"contact_number" binding:"required"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
}

type CreateBookingRequest struct {
	DevoteeID       string   `json:"devotee_id" binding:"required"`
	PoojaID         string   `json:"pooja_id" binding:"required"`
	ScheduledDate   string   `json:"scheduled_date" binding:"required"`
	ScheduledTime   string   `json:"scheduled_time" binding:"required"`
	AmountPaid      *float64 `json:"amount_paid,omitempty"`
	SpecialRequests string   `json:"special_requests,omitempty"`
}

type CreateTransactionRequest struct {
	DevoteeID       string  `json:"devotee_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required"`
	Type            string  `json:"transaction_type" binding:"required"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
	Description     string  `json:"description,omitempty"`
}

// TransactionsResponse carries the ledger plus the derived revenue total
type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	TotalRevenue float64       `json:"total_revenue"`
}

type CreateDonationRequest struct {
	CampaignID  string  `json:"campaign_id,omitempty"`
	Amount      float64 `json:"amount" binding:"required"`
	DonorName   string  `json:"donor_name,omitempty"`
	DonorEmail  string  `json:"donor_email,omitempty"`
	DonorPhone  string  `json:"donor_phone,omitempty"`
	IsAnonymous bool    `json:"is_anonymous,omitempty"`
}

type CreateSubscriptionRequest struct {
	PoojaID         string  `json:"pooja_id" binding:"required"`
	Frequency       string  `json:"frequency" binding:"required"`
	StartDate       string  `json:"start_date" binding:"required"`
	EndDate         string  `json:"end_date,omitempty"`
	Amount          float64 `json:"amount" binding:"required"`
	SpecialRequests string  `json:"special_requests,omitempty"`
}

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category,omitempty"`
}

type BookDarshanRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
}

type CreateInventoryItemRequest struct {
	ItemName     string   `json:"item_name" binding:"required"`
	Category     string   `json:"category,omitempty"`
	Quantity     int      `json:"quantity"`
	Unit         string   `json:"unit,omitempty"`
	PricePerUnit *float64 `json:"price_per_unit,omitempty"`
	ReorderLevel *int     `json:"reorder_level,omitempty"`
	SupplierName string   `json:"supplier_name,omitempty"`
}

type IDResponse struct {
	ID string `json:"id"`
}

// DashboardResponse aggregates the signed-in user's home screen reads
type DashboardResponse struct {
	UpcomingBookings  []Booking          `json:"upcoming_bookings"`
	Subscriptions     []Subscription     `json:"subscriptions"`
	UpcomingFestivals []FestivalEvent    `json:"upcoming_festivals"`
	ActiveCampaigns   []DonationCampaign `json:"active_campaigns"`
}
