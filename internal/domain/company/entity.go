// internal/domain/company/entity.go
package company

import (
	"context"
	"time"
)

type Company struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	Address   string    `json:"address,omitempty" db:"address"`
	City      string    `json:"city,omitempty" db:"city"`
	State     string    `json:"state,omitempty" db:"state"`
	Zip       string    `json:"zip,omitempty" db:"zip"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Email     string    `json:"email,omitempty" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, c *Company) error
	FindByID(ctx context.Context, id int64) (*Company, error)
	FindBySlug(ctx context.Context, slug string) (*Company, error)
}
