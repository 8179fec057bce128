// internal/service/inventory/inventory.go
package inventory

import (
	"context"
	"strings"

	"fieldserve/internal/domain/inventory"
	xerrors "fieldserve/internal/pkg/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InventoryService manages the global parts catalog. Unlike every other
// resource this one is not tenant-scoped; see DESIGN.md.
type InventoryService struct {
	invRepo inventory.Repository
	logger  *zap.Logger
}

func NewInventoryService(invRepo inventory.Repository, logger *zap.Logger) *InventoryService {
	return &InventoryService{invRepo: invRepo, logger: logger}
}

func (s *InventoryService) CreateItem(ctx context.Context, req *inventory.CreateItemRequest) (*inventory.Item, error) {
	v := xerrors.NewValidation()

	if strings.TrimSpace(req.Name) == "" {
		v.Add("name", "name is required")
	}
	if strings.TrimSpace(req.SKU) == "" {
		v.Add("sku", "sku is required")
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		v.Add("quantity", "quantity cannot be negative")
	}
	if req.MinQuantity != nil && *req.MinQuantity < 0 {
		v.Add("min_quantity", "min_quantity cannot be negative")
	}

	price := decimal.Zero
	if req.UnitPrice != "" {
		parsed, err := decimal.NewFromString(req.UnitPrice)
		if err != nil || parsed.IsNegative() {
			v.Add("unit_price", "unit_price must be a non-negative decimal")
		} else {
			price = parsed
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	it := &inventory.Item{
		Name:      strings.TrimSpace(req.Name),
		SKU:       strings.TrimSpace(req.SKU),
		Category:  req.Category,
		UnitPrice: price,
		Supplier:  req.Supplier,
	}
	if req.Quantity != nil {
		it.Quantity = *req.Quantity
	}
	if req.MinQuantity != nil {
		it.MinQuantity = *req.MinQuantity
	}

	if err := s.invRepo.Create(ctx, it); err != nil {
		if !xerrors.Is(err, xerrors.ErrConflict) {
			s.logger.Error("failed to create inventory item", zap.Error(err))
		}
		return nil, err
	}

	return it, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id int64) (*inventory.Item, error) {
	return s.invRepo.FindByID(ctx, id)
}

func (s *InventoryService) ListItems(ctx context.Context) ([]inventory.Item, error) {
	return s.invRepo.List(ctx)
}

// ListLowStock returns items at or below their minimum quantity.
func (s *InventoryService) ListLowStock(ctx context.Context) ([]inventory.Item, error) {
	return s.invRepo.ListLowStock(ctx)
}

func (s *InventoryService) UpdateItem(ctx context.Context, id int64, req *inventory.UpdateItemRequest) (*inventory.Item, error) {
	it, err := s.invRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v := xerrors.NewValidation()

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			v.Add("name", "name cannot be empty")
		} else {
			it.Name = strings.TrimSpace(*req.Name)
		}
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			v.Add("quantity", "quantity cannot be negative")
		} else {
			it.Quantity = *req.Quantity
		}
	}
	if req.MinQuantity != nil {
		if *req.MinQuantity < 0 {
			v.Add("min_quantity", "min_quantity cannot be negative")
		} else {
			it.MinQuantity = *req.MinQuantity
		}
	}
	if req.UnitPrice != nil {
		parsed, err := decimal.NewFromString(*req.UnitPrice)
		if err != nil || parsed.IsNegative() {
			v.Add("unit_price", "unit_price must be a non-negative decimal")
		} else {
			it.UnitPrice = parsed
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if req.Category != nil {
		it.Category = req.Category
	}
	if req.Supplier != nil {
		it.Supplier = req.Supplier
	}

	if err := s.invRepo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int64) error {
	found, err := s.invRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return xerrors.ErrNotFound
	}
	return nil
}
