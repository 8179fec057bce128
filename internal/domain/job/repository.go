// internal/domain/job/repository.go
package job

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, id int64) (*Job, error)
	// ListByCompany joins through customers; jobs store no company id.
	ListByCompany(ctx context.Context, companyID int64) ([]Job, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Job, error)
	ListScheduledBetween(ctx context.Context, companyID int64, from, to time.Time) ([]Job, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id int64) (bool, error)
}
