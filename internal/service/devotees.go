package service

import (
	"context"
	"fmt"

	"mandir/internal/cache"
	"mandir/internal/models"
)

type DevoteeStore interface {
	List(ctx context.Context, search string) ([]models.Devotee, error)
	Create(ctx context.Context, d *models.Devotee) error
	Delete(ctx context.Context, id string) error
}

type DevoteeService struct {
	repo  DevoteeStore
	store *cache.Store
}

func NewDevoteeService(repo DevoteeStore, store *cache.Store) *DevoteeService {
	return &DevoteeService{repo: repo, store: store}
}

// List serves the devotee register. Each distinct search term is cached
// under its own key, so typing through a search refines without refetching
// earlier terms.
func (s *DevoteeService) List(ctx context.Context, search string) ([]models.Devotee, error) {
	return cache.Resolve(ctx, s.store, cache.NewKey("devotees", search), func(ctx context.Context) ([]models.Devotee, error) {
		devotees, err := s.repo.List(ctx, search)
		if err != nil {
			return nil, fmt.Errorf("failed to list devotees: %w", err)
		}
		return devotees, nil
	})
}

func (s *DevoteeService) Create(ctx context.Context, req *models.CreateDevoteeRequest) (*models.Devotee, error) {
	devotee := &models.Devotee{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Email:         optional(req.Email),
		Address:       optional(req.Address),
		City:          optional(req.City),
		State:         optional(req.State),
	}

	if err := s.repo.Create(ctx, devotee); err != nil {
		return nil, fmt.Errorf("failed to create devotee: %w", err)
	}

	s.store.Invalidate(cache.NewKey("devotees"))
	return devotee, nil
}

func (s *DevoteeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete devotee: %w", err)
	}

	s.store.Invalidate(cache.NewKey("devotees"))
	return nil
}
