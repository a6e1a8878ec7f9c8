package service

import (
	"context"
	"fmt"

	"mandir/internal/cache"
	"mandir/internal/models"
)

type TransactionStore interface {
	List(ctx context.Context) ([]models.Transaction, error)
	TotalRevenue(ctx context.Context) (float64, error)
	Create(ctx context.Context, t *models.Transaction) error
}

type TransactionService struct {
	repo  TransactionStore
	store *cache.Store
}

func NewTransactionService(repo TransactionStore, store *cache.Store) *TransactionService {
	return &TransactionService{repo: repo, store: store}
}

// List returns the ledger together with the revenue total, so the two stay
// consistent in one cached read.
func (s *TransactionService) List(ctx context.Context) (*models.TransactionsResponse, error) {
	return cache.Resolve(ctx, s.store, cache.NewKey("transactions"), func(ctx context.Context) (*models.TransactionsResponse, error) {
		txns, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		total, err := s.repo.TotalRevenue(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to total revenue: %w", err)
		}
		return &models.TransactionsResponse{Transactions: txns, TotalRevenue: total}, nil
	})
}

func (s *TransactionService) Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	txnType := models.TransactionType(req.Type)
	if err := models.CheckEnum("transaction_type", txnType.Valid(), req.Type); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	txn := &models.Transaction{
		DevoteeID:       req.DevoteeID,
		Amount:          req.Amount,
		Type:            txnType,
		PaymentMethod:   optional(req.PaymentMethod),
		ReferenceNumber: optional(req.ReferenceNumber),
		Description:     optional(req.Description),
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.store.Invalidate(cache.NewKey("transactions"))
	return txn, nil
}
