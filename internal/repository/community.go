package repository

import (
	"context"

	"mandir/internal/database"
	"mandir/internal/models"
)

type CommunityRepository struct {
	db *database.DB
}

func NewCommunityRepository(db *database.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// ListApproved returns moderated posts newest first.
func (r *CommunityRepository) ListApproved(ctx context.Context) ([]models.CommunityPost, error) {
	query := `
		SELECT id, user_id, title, content, category, is_approved, likes_count, created_at
		FROM community_posts
		WHERE is_approved = true
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.CommunityPost
	for rows.Next() {
		var p models.CommunityPost
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Title,
			&p.Content,
			&p.Category,
			&p.IsApproved,
			&p.LikesCount,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

// Create inserts a post awaiting approval.
func (r *CommunityRepository) Create(ctx context.Context, p *models.CommunityPost) error {
	query := `
		INSERT INTO community_posts (user_id, title, content, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_approved, likes_count, created_at`

	return r.db.QueryRowContext(ctx, query,
		p.UserID,
		p.Title,
		p.Content,
		p.Category,
	).Scan(&p.ID, &p.IsApproved, &p.LikesCount, &p.CreatedAt)
}
