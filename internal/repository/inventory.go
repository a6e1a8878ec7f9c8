package repository

import (
	"context"

	"mandir/internal/database"
	"mandir/internal/models"
)

type InventoryRepository struct {
	db *database.DB
}

func NewInventoryRepository(db *database.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	query := `
		SELECT id, item_name, category, quantity, unit, price_per_unit,
		       reorder_level, supplier_name, last_restocked, created_at
		FROM inventory_items
		ORDER BY item_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		err := rows.Scan(
			&item.ID,
			&item.ItemName,
			&item.Category,
			&item.Quantity,
			&item.Unit,
			&item.PricePerUnit,
			&item.ReorderLevel,
			&item.SupplierName,
			&item.LastRestocked,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (item_name, category, quantity, unit, price_per_unit, reorder_level, supplier_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		item.ItemName,
		item.Category,
		item.Quantity,
		item.Unit,
		item.PricePerUnit,
		item.ReorderLevel,
		item.SupplierName,
	).Scan(&item.ID, &item.CreatedAt)
}
