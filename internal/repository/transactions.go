package repository

import (
	"context"

	"mandir/internal/database"
	"mandir/internal/models"
)

type TransactionRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// List returns the ledger newest first with each row's devotee embedded.
func (r *TransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.devotee_id, t.amount, t.transaction_type, t.payment_method,
		       t.reference_number, t.description, t.transaction_date, t.created_at,
		       d.name, d.contact_number
		FROM transactions t
		JOIN devotees d ON d.id = t.devotee_id
		ORDER BY t.transaction_date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var dev models.DevoteeRef
		err := rows.Scan(
			&t.ID,
			&t.DevoteeID,
			&t.Amount,
			&t.Type,
			&t.PaymentMethod,
			&t.ReferenceNumber,
			&t.Description,
			&t.TransactionDate,
			&t.CreatedAt,
			&dev.Name,
			&dev.ContactNumber,
		)
		if err != nil {
			return nil, err
		}
		t.Devotee = &dev
		txns = append(txns, t)
	}

	return txns, rows.Err()
}

// TotalRevenue sums every ledger amount.
func (r *TransactionRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions`
	err := r.db.QueryRowContext(ctx, query).Scan(&total)
	return total, err
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (devotee_id, amount, transaction_type, payment_method, reference_number, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, transaction_date, created_at`

	return r.db.QueryRowContext(ctx, query,
		t.DevoteeID,
		t.Amount,
		t.Type,
		t.PaymentMethod,
		t.ReferenceNumber,
		t.Description,
	).Scan(&t.ID, &t.TransactionDate, &t.CreatedAt)
}
