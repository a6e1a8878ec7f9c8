package repository

import (
	"context"

	"mandir/internal/database"
	"mandir/internal/models"
)

type DarshanRepository struct {
	db *database.DB
}

func NewDarshanRepository(db *database.DB) *DarshanRepository {
	return &DarshanRepository{db: db}
}

// SlotsByDate returns the day's open slots in time order.
func (r *DarshanRepository) SlotsByDate(ctx context.Context, date string) ([]models.DarshanSlot, error) {
	query := `
		SELECT id, slot_date::text, slot_time::text, duration_minutes, max_bookings, current_bookings,
		       is_available, price, meeting_link, created_at
		FROM virtual_darshan_slots
		WHERE slot_date = $1 AND is_available = true
		ORDER BY slot_time ASC`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []models.DarshanSlot
	for rows.Next() {
		var s models.DarshanSlot
		err := rows.Scan(
			&s.ID,
			&s.SlotDate,
			&s.SlotTime,
			&s.DurationMinutes,
			&s.MaxBookings,
			&s.CurrentBookings,
			&s.IsAvailable,
			&s.Price,
			&s.MeetingLink,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}

	return slots, rows.Err()
}

// BookingsByUser returns the user's bookings for today onward, soonest first,
// each with its slot embedded.
func (r *DarshanRepository) BookingsByUser(ctx context.Context, userID, today string) ([]models.DarshanBooking, error) {
	query := `
		SELECT b.id, b.slot_id, b.user_id, b.status, b.payment_status, b.created_at,
		       s.id, s.slot_date::text, s.slot_time::text, s.duration_minutes, s.max_bookings,
		       s.current_bookings, s.is_available, s.price, s.meeting_link, s.created_at
		FROM virtual_darshan_bookings b
		JOIN virtual_darshan_slots s ON s.id = b.slot_id
		WHERE b.user_id = $1 AND s.slot_date >= $2
		ORDER BY s.slot_date ASC, s.slot_time ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.DarshanBooking
	for rows.Next() {
		var b models.DarshanBooking
		var s models.DarshanSlot
		err := rows.Scan(
			&b.ID,
			&b.SlotID,
			&b.UserID,
			&b.Status,
			&b.PaymentStatus,
			&b.CreatedAt,
			&s.ID,
			&s.SlotDate,
			&s.SlotTime,
			&s.DurationMinutes,
			&s.MaxBookings,
			&s.CurrentBookings,
			&s.IsAvailable,
			&s.Price,
			&s.MeetingLink,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		b.Slot = &s
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// Book claims a place in the slot and records the booking in one transaction.
// The guarded update makes concurrent claims on the last place serialize in
// the database; the loser gets ErrSlotFull.
func (r *DarshanRepository) Book(ctx context.Context, b *models.DarshanBooking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	claim := `
		UPDATE virtual_darshan_slots
		SET current_bookings = current_bookings + 1
		WHERE id = $1 AND is_available = true AND current_bookings < max_bookings`

	res, err := tx.ExecContext(ctx, claim, b.SlotID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSlotFull
	}

	insert := `
		INSERT INTO virtual_darshan_bookings (slot_id, user_id)
		VALUES ($1, $2)
		RETURNING id, status, payment_status, created_at`

	err = tx.QueryRowContext(ctx, insert, b.SlotID, b.UserID).
		Scan(&b.ID, &b.Status, &b.PaymentStatus, &b.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}
