// internal/domain/invoice/repository.go
package invoice

import (
	"context"
	"time"
)

type Repository interface {
	// Create persists the invoice and its items in one transaction.
	Create(ctx context.Context, inv *Invoice) error
	FindByID(ctx context.Context, id int64) (*Invoice, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Invoice, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Invoice, error)
	ListPaidBetween(ctx context.Context, companyID int64, from, to time.Time) ([]Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id int64) (bool, error)
}
