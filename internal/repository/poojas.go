package repository

import (
	"context"

	"mandir/internal/database"
	"mandir/internal/models"
)

type PoojaRepository struct {
	db *database.DB
}

func NewPoojaRepository(db *database.DB) *PoojaRepository {
	return &PoojaRepository{db: db}
}

func (r *PoojaRepository) List(ctx context.Context) ([]models.Pooja, error) {
	query := `
		SELECT id, name, description, duration_minutes, base_price, created_at
		FROM poojas
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var poojas []models.Pooja
	for rows.Next() {
		var p models.Pooja
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.DurationMinutes,
			&p.BasePrice,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		poojas = append(poojas, p)
	}

	return poojas, rows.Err()
}
