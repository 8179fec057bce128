// internal/domain/inventory/entity.go
package inventory

import (
	"context"

	"github.com/shopspring/decimal"
)

// Inventory is not tenant-scoped: the table carries no company id. That is
// a known gap in the schema this service preserves, not a shared-catalog
// design; see DESIGN.md.
type Item struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	SKU         string          `json:"sku" db:"sku"`
	Category    *string         `json:"category,omitempty" db:"category"`
	Quantity    int             `json:"quantity" db:"quantity"`
	MinQuantity int             `json:"min_quantity" db:"min_quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" db:"unit_price"`
	Supplier    *string         `json:"supplier,omitempty" db:"supplier"`
}

type CreateItemRequest struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Category    *string `json:"category"`
	Quantity    *int    `json:"quantity"`
	MinQuantity *int    `json:"min_quantity"`
	UnitPrice   string  `json:"unit_price"`
	Supplier    *string `json:"supplier"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Quantity    *int    `json:"quantity"`
	MinQuantity *int    `json:"min_quantity"`
	UnitPrice   *string `json:"unit_price"`
	Supplier    *string `json:"supplier"`
}

type Repository interface {
	Create(ctx context.Context, it *Item) error
	FindByID(ctx context.Context, id int64) (*Item, error)
	List(ctx context.Context) ([]Item, error)
	// ListLowStock returns items where quantity <= min_quantity (inclusive).
	ListLowStock(ctx context.Context) ([]Item, error)
	Update(ctx context.Context, it *Item) error
	Delete(ctx context.Context, id int64) (bool, error)
}
