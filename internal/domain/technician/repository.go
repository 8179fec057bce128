// internal/domain/technician/repository.go
package technician

import "context"

type Repository interface {
	Create(ctx context.Context, t *Technician) error
	FindByID(ctx context.Context, id int64) (*Technician, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Technician, error)
	Update(ctx context.Context, t *Technician) error
	Delete(ctx context.Context, id int64) (bool, error)
}
