// internal/domain/customer/repository.go
package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id int64) (*Customer, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id int64) (bool, error)
}
