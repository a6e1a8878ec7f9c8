package repository

import (
	"context"
	"database/sql"

	"mandir/internal/database"
	"mandir/internal/models"
)

type DonationRepository struct {
	db *database.DB
}

func NewDonationRepository(db *database.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// ListActiveCampaigns returns running campaigns newest first.
func (r *DonationRepository) ListActiveCampaigns(ctx context.Context) ([]models.DonationCampaign, error) {
	query := `
		SELECT id, title, description, image_url, target_amount, current_amount,
		       start_date::text, end_date::text, is_active, created_at
		FROM donation_campaigns
		WHERE is_active = true
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.DonationCampaign
	for rows.Next() {
		var c models.DonationCampaign
		err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.ImageURL,
			&c.TargetAmount,
			&c.CurrentAmount,
			&c.StartDate,
			&c.EndDate,
			&c.IsActive,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}

// Create inserts the donation and, when it targets a campaign, bumps that
// campaign's running total in the same transaction.
func (r *DonationRepository) Create(ctx context.Context, d *models.Donation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO donations (campaign_id, user_id, amount, donor_name, donor_email,
		                       donor_phone, is_anonymous, payment_method, payment_reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, payment_status, created_at`

	err = tx.QueryRowContext(ctx, insert,
		d.CampaignID,
		d.UserID,
		d.Amount,
		d.DonorName,
		d.DonorEmail,
		d.DonorPhone,
		d.IsAnonymous,
		d.PaymentMethod,
		d.PaymentReference,
	).Scan(&d.ID, &d.PaymentStatus, &d.CreatedAt)
	if err != nil {
		return err
	}

	if d.CampaignID != nil {
		update := `UPDATE donation_campaigns SET current_amount = current_amount + $1 WHERE id = $2`
		if _, err := tx.ExecContext(ctx, update, d.Amount, *d.CampaignID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetCampaign returns nil when the campaign does not exist.
func (r *DonationRepository) GetCampaign(ctx context.Context, id string) (*models.DonationCampaign, error) {
	query := `
		SELECT id, title, description, image_url, target_amount, current_amount,
		       start_date::text, end_date::text, is_active, created_at
		FROM donation_campaigns
		WHERE id = $1`

	var c models.DonationCampaign
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.ImageURL,
		&c.TargetAmount,
		&c.CurrentAmount,
		&c.StartDate,
		&c.EndDate,
		&c.IsActive,
		&c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
