package repository

import (
	"context"

	"mandir/internal/database"
	"mandir/internal/models"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// List returns every booking with its devotee and pooja embedded, most
// recently scheduled first.
func (r *BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	query := `
		SELECT b.id, b.devotee_id, b.pooja_id, b.user_id,
		       b.scheduled_date::text, b.scheduled_time::text,
		       b.amount_paid, b.special_requests, b.status, b.created_at, b.updated_at,
		       d.name, d.contact_number, p.name, p.base_price
		FROM pooja_bookings b
		JOIN devotees d ON d.id = b.devotee_id
		JOIN poojas p ON p.id = b.pooja_id
		ORDER BY b.scheduled_date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		var dev models.DevoteeRef
		var pooja models.PoojaRef
		err := rows.Scan(
			&b.ID,
			&b.DevoteeID,
			&b.PoojaID,
			&b.UserID,
			&b.ScheduledDate,
			&b.ScheduledTime,
			&b.AmountPaid,
			&b.SpecialRequests,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
			&dev.Name,
			&dev.ContactNumber,
			&pooja.Name,
			&pooja.BasePrice,
		)
		if err != nil {
			return nil, err
		}
		b.Devotee = &dev
		b.Pooja = &pooja
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// ListByUser returns the user's bookings soonest first, with the pooja
// embedded. limit <= 0 means no limit.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Booking, error) {
	query := `
		SELECT b.id, b.devotee_id, b.pooja_id, b.user_id,
		       b.scheduled_date::text, b.scheduled_time::text,
		       b.amount_paid, b.special_requests, b.status, b.created_at, b.updated_at,
		       p.name, p.base_price
		FROM pooja_bookings b
		JOIN poojas p ON p.id = b.pooja_id
		WHERE b.user_id = $1
		ORDER BY b.scheduled_date ASC`
	args := []any{userID}

	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		var pooja models.PoojaRef
		err := rows.Scan(
			&b.ID,
			&b.DevoteeID,
			&b.PoojaID,
			&b.UserID,
			&b.ScheduledDate,
			&b.ScheduledTime,
			&b.AmountPaid,
			&b.SpecialRequests,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
			&pooja.Name,
			&pooja.BasePrice,
		)
		if err != nil {
			return nil, err
		}
		b.Pooja = &pooja
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// Create inserts a booking; status defaults to 'scheduled' in the database.
func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO pooja_bookings (devotee_id, pooja_id, user_id, scheduled_date, scheduled_time, amount_paid, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		b.DevoteeID,
		b.PoojaID,
		b.UserID,
		b.ScheduledDate,
		b.ScheduledTime,
		b.AmountPaid,
		b.SpecialRequests,
	).Scan(&b.ID, &b.Status, &b.CreatedAt, &b.UpdatedAt)
}
