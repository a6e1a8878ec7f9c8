package service

import (
	"context"
	"fmt"

	"mandir/internal/cache"
	"mandir/internal/models"
)

type DonationStore interface {
	ListActiveCampaigns(ctx context.Context) ([]models.DonationCampaign, error)
	Create(ctx context.Context, d *models.Donation) error
	GetCampaign(ctx context.Context, id string) (*models.DonationCampaign, error)
}

type DonationService struct {
	repo  DonationStore
	store *cache.Store
}

func NewDonationService(repo DonationStore, store *cache.Store) *DonationService {
	return &DonationService{repo: repo, store: store}
}

func (s *DonationService) ActiveCampaigns(ctx context.Context) ([]models.DonationCampaign, error) {
	return cache.Resolve(ctx, s.store, cache.NewKey("campaigns"), func(ctx context.Context) ([]models.DonationCampaign, error) {
		campaigns, err := s.repo.ListActiveCampaigns(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list campaigns: %w", err)
		}
		return campaigns, nil
	})
}

// Donate records a donation. Anonymous donations drop the donor identity;
// named donations require one. A donation may stand alone or feed a campaign.
func (s *DonationService) Donate(ctx context.Context, req *models.CreateDonationRequest, userID string) (*models.Donation, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	donorName := req.DonorName
	if req.IsAnonymous {
		donorName = "Anonymous"
	} else if donorName == "" {
		return nil, fmt.Errorf("%w: donor name is required", ErrInvalid)
	}

	if req.CampaignID != "" {
		campaign, err := s.repo.GetCampaign(ctx, req.CampaignID)
		if err != nil {
			return nil, fmt.Errorf("failed to get campaign: %w", err)
		}
		if campaign == nil {
			return nil, fmt.Errorf("%w: campaign", ErrNotFound)
		}
		if !campaign.IsActive {
			return nil, fmt.Errorf("%w: campaign is closed", ErrInvalid)
		}
	}

	donation := &models.Donation{
		CampaignID:  optional(req.CampaignID),
		UserID:      optional(userID),
		Amount:      req.Amount,
		DonorName:   donorName,
		DonorEmail:  optional(req.DonorEmail),
		DonorPhone:  optional(req.DonorPhone),
		IsAnonymous: req.IsAnonymous,
	}
	if req.IsAnonymous {
		donation.DonorEmail = nil
		donation.DonorPhone = nil
	}

	if err := s.repo.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	s.store.Invalidate(cache.NewKey("campaigns"))
	return donation, nil
}
