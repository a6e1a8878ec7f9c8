package service

import (
	"context"
	"fmt"

	"mandir/internal/cache"
	"mandir/internal/models"
)

type SubscriptionStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Subscription, error)
	Create(ctx context.Context, s *models.Subscription) error
	Cancel(ctx context.Context, id, userID string) (bool, error)
}

type SubscriptionService struct {
	repo  SubscriptionStore
	store *cache.Store
}

func NewSubscriptionService(repo SubscriptionStore, store *cache.Store) *SubscriptionService {
	return &SubscriptionService{repo: repo, store: store}
}

func (s *SubscriptionService) ListByUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	if userID == "" {
		return nil, nil
	}
	key := cache.NewKey("subscriptions", userID)
	return cache.Resolve(ctx, s.store, key, func(ctx context.Context) ([]models.Subscription, error) {
		subs, err := s.repo.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list subscriptions: %w", err)
		}
		return subs, nil
	})
}

func (s *SubscriptionService) Create(ctx context.Context, req *models.CreateSubscriptionRequest, userID string) (*models.Subscription, error) {
	freq := models.Frequency(req.Frequency)
	if err := models.CheckEnum("frequency", freq.Valid(), req.Frequency); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	sub := &models.Subscription{
		UserID:          userID,
		PoojaID:         req.PoojaID,
		Frequency:       freq,
		StartDate:       req.StartDate,
		EndDate:         optional(req.EndDate),
		Amount:          req.Amount,
		SpecialRequests: optional(req.SpecialRequests),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.store.Invalidate(cache.NewKey("subscriptions", userID))
	return sub, nil
}

// Cancel deactivates the user's subscription. Cancelling someone else's
// subscription reads as not found rather than leaking its existence.
func (s *SubscriptionService) Cancel(ctx context.Context, id, userID string) error {
	ok, err := s.repo.Cancel(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: subscription", ErrNotFound)
	}

	s.store.Invalidate(cache.NewKey("subscriptions", userID))
	return nil
}
