package repository

import (
	"context"

	"mandir/internal/database"
	"mandir/internal/models"
)

type FestivalRepository struct {
	db *database.DB
}

func NewFestivalRepository(db *database.DB) *FestivalRepository {
	return &FestivalRepository{db: db}
}

const festivalColumns = `id, title, description, location, image_url, event_date::text,
	       start_time::text, end_time::text, is_major_festival, created_at`

// Upcoming returns events on or after today, soonest first.
func (r *FestivalRepository) Upcoming(ctx context.Context, today string) ([]models.FestivalEvent, error) {
	query := `
		SELECT ` + festivalColumns + `
		FROM festival_events
		WHERE event_date >= $1
		ORDER BY event_date ASC`

	return r.query(ctx, query, today)
}

// Past returns the most recent finished events, limited to keep the
// archive view short.
func (r *FestivalRepository) Past(ctx context.Context, today string, limit int) ([]models.FestivalEvent, error) {
	query := `
		SELECT ` + festivalColumns + `
		FROM festival_events
		WHERE event_date < $1
		ORDER BY event_date DESC
		LIMIT $2`

	return r.query(ctx, query, today, limit)
}

func (r *FestivalRepository) query(ctx context.Context, query string, args ...any) ([]models.FestivalEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.FestivalEvent
	for rows.Next() {
		var e models.FestivalEvent
		err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Description,
			&e.Location,
			&e.ImageURL,
			&e.EventDate,
			&e.StartTime,
			&e.EndTime,
			&e.IsMajorFestival,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
