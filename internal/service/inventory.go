package service

import (
	"context"
	"fmt"

	"mandir/internal/cache"
	"mandir/internal/models"
)

type InventoryStore interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
	Create(ctx context.Context, item *models.InventoryItem) error
}

type InventoryService struct {
	repo  InventoryStore
	store *cache.Store
}

func NewInventoryService(repo InventoryStore, store *cache.Store) *InventoryService {
	return &InventoryService{repo: repo, store: store}
}

func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	return cache.Resolve(ctx, s.store, cache.NewKey("inventory"), func(ctx context.Context) ([]models.InventoryItem, error) {
		items, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list inventory: %w", err)
		}
		return items, nil
	})
}

func (s *InventoryService) Create(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalid)
	}

	item := &models.InventoryItem{
		ItemName:     req.ItemName,
		Category:     optional(req.Category),
		Quantity:     req.Quantity,
		Unit:         optional(req.Unit),
		PricePerUnit: req.PricePerUnit,
		ReorderLevel: req.ReorderLevel,
		SupplierName: optional(req.SupplierName),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.store.Invalidate(cache.NewKey("inventory"))
	return item, nil
}
