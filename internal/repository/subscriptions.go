package repository

import (
	"context"

	"mandir/internal/database"
	"mandir/internal/models"
)

type SubscriptionRepository struct {
	db *database.DB
}

func NewSubscriptionRepository(db *database.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// ListByUser returns the user's subscriptions newest first with the pooja embedded.
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	query := `
		SELECT s.id, s.user_id, s.pooja_id, s.frequency, s.start_date::text, s.end_date::text,
		       s.next_occurrence::text, s.amount, s.special_requests, s.is_active, s.created_at,
		       p.name, p.base_price
		FROM subscription_poojas s
		JOIN poojas p ON p.id = s.pooja_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var s models.Subscription
		var pooja models.PoojaRef
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.PoojaID,
			&s.Frequency,
			&s.StartDate,
			&s.EndDate,
			&s.NextOccurrence,
			&s.Amount,
			&s.SpecialRequests,
			&s.IsActive,
			&s.CreatedAt,
			&pooja.Name,
			&pooja.BasePrice,
		)
		if err != nil {
			return nil, err
		}
		s.Pooja = &pooja
		subs = append(subs, s)
	}

	return subs, rows.Err()
}

// Create inserts a subscription. The first occurrence is the start date itself.
func (r *SubscriptionRepository) Create(ctx context.Context, s *models.Subscription) error {
	query := `
		INSERT INTO subscription_poojas (user_id, pooja_id, frequency, start_date, end_date, next_occurrence, amount, special_requests)
		VALUES ($1, $2, $3, $4, $5, $4, $6, $7)
		RETURNING id, next_occurrence::text, is_active, created_at`

	return r.db.QueryRowContext(ctx, query,
		s.UserID,
		s.PoojaID,
		s.Frequency,
		s.StartDate,
		s.EndDate,
		s.Amount,
		s.SpecialRequests,
	).Scan(&s.ID, &s.NextOccurrence, &s.IsActive, &s.CreatedAt)
}

// Cancel deactivates the subscription if it belongs to the user. Returns
// whether a row was updated.
func (r *SubscriptionRepository) Cancel(ctx context.Context, id, userID string) (bool, error) {
	query := `UPDATE subscription_poojas SET is_active = false WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
