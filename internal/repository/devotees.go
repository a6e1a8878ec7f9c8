package repository

import (
	"context"

	"mandir/internal/database"
	"mandir/internal/models"
)

type DevoteeRepository struct {
	db *database.DB
}

func NewDevoteeRepository(db *database.DB) *DevoteeRepository {
	return &DevoteeRepository{db: db}
}

// List returns devotees newest first. A non-empty search term matches a
// case-insensitive substring of name, contact number, or email.
func (r *DevoteeRepository) List(ctx context.Context, search string) ([]models.Devotee, error) {
	query := `
		SELECT id, name, contact_number, email, address, city, state, created_at, updated_at
		FROM devotees`
	args := []any{}

	if search != "" {
		query += `
		WHERE name ILIKE $1 OR contact_number ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += `
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devotees []models.Devotee
	for rows.Next() {
		var d models.Devotee
		err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.ContactNumber,
			&d.Email,
			&d.Address,
			&d.City,
			&d.State,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		devotees = append(devotees, d)
	}

	return devotees, rows.Err()
}

func (r *DevoteeRepository) Create(ctx context.Context, d *models.Devotee) error {
	query := `
		INSERT INTO devotees (name, contact_number, email, address, city, state)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		d.Name,
		d.ContactNumber,
		d.Email,
		d.Address,
		d.City,
		d.State,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// Delete removes the row outright. Dependent bookings or transactions make
// the database reject the delete; that constraint error is surfaced as-is.
func (r *DevoteeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM devotees WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
