package service

import (
	"context"
	"fmt"

	"mandir/internal/cache"
	"mandir/internal/models"
)

type PoojaStore interface {
	List(ctx context.Context) ([]models.Pooja, error)
}

type PoojaService struct {
	repo  PoojaStore
	store *cache.Store
}

func NewPoojaService(repo PoojaStore, store *cache.Store) *PoojaService {
	return &PoojaService{repo: repo, store: store}
}

func (s *PoojaService) List(ctx context.Context) ([]models.Pooja, error) {
	return cache.Resolve(ctx, s.store, cache.NewKey("poojas"), func(ctx context.Context) ([]models.Pooja, error) {
		poojas, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list poojas: %w", err)
		}
		return poojas, nil
	})
}
