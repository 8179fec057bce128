// internal/repository/postgres/inventory_repo.go
package postgres

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/inventory"
	xerrors "fieldserve/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryRepository is the one repository allowed to list without a
// company filter: the inventory table is global.
type InventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventoryColumns = `id, name, sku, category, quantity, min_quantity, unit_price, supplier`

func (r *InventoryRepository) Create(ctx context.Context, it *inventory.Item) error {
	query := `
		INSERT INTO inventory (name, sku, category, quantity, min_quantity, unit_price, supplier)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		it.Name, it.SKU, it.Category, it.Quantity, it.MinQuantity, it.UnitPrice, it.Supplier,
	).Scan(&it.ID)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create inventory item: %w", err)
	}

	return nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id int64) (*inventory.Item, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`

	var it inventory.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.SKU, &it.Category, &it.Quantity, &it.MinQuantity, &it.UnitPrice, &it.Supplier,
	)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	return &it, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]inventory.Item, error) {
	return r.queryItems(ctx, `SELECT `+inventoryColumns+` FROM inventory ORDER BY name`)
}

// ListLowStock boundary is inclusive: quantity == min_quantity is low.
func (r *InventoryRepository) ListLowStock(ctx context.Context) ([]inventory.Item, error) {
	return r.queryItems(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE quantity <= min_quantity ORDER BY name`)
}

func (r *InventoryRepository) Update(ctx context.Context, it *inventory.Item) error {
	query := `
		UPDATE inventory
		SET name = $2, category = $3, quantity = $4, min_quantity = $5, unit_price = $6, supplier = $7
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		it.ID, it.Name, it.Category, it.Quantity, it.MinQuantity, it.UnitPrice, it.Supplier,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *InventoryRepository) queryItems(ctx context.Context, query string) ([]inventory.Item, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	items := []inventory.Item{}
	for rows.Next() {
		var it inventory.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.SKU, &it.Category, &it.Quantity, &it.MinQuantity, &it.UnitPrice, &it.Supplier,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}
