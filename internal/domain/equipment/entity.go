// internal/domain/equipment/entity.go
package equipment

import (
	"context"
	"time"
)

// Equipment tenancy is transitive through the owning customer.
type Equipment struct {
	ID              int64      `json:"id" db:"id"`
	CustomerID      int64      `json:"customer_id" db:"customer_id"`
	Type            string     `json:"type" db:"type"`
	Brand           *string    `json:"brand,omitempty" db:"brand"`
	Model           *string    `json:"model,omitempty" db:"model"`
	SerialNumber    *string    `json:"serial_number,omitempty" db:"serial_number"`
	InstallDate     *time.Time `json:"install_date,omitempty" db:"install_date"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty" db:"last_service_date"`
	NextServiceDate *time.Time `json:"next_service_date,omitempty" db:"next_service_date"`
	Notes           *string    `json:"notes,omitempty" db:"notes"`
}

type CreateEquipmentRequest struct {
	CustomerID      int64      `json:"customer_id"`
	Type            string     `json:"type"`
	Brand           *string    `json:"brand"`
	Model           *string    `json:"model"`
	SerialNumber    *string    `json:"serial_number"`
	InstallDate     *time.Time `json:"install_date"`
	LastServiceDate *time.Time `json:"last_service_date"`
	NextServiceDate *time.Time `json:"next_service_date"`
	Notes           *string    `json:"notes"`
}

type UpdateEquipmentRequest struct {
	Type            *string    `json:"type"`
	Brand           *string    `json:"brand"`
	Model           *string    `json:"model"`
	SerialNumber    *string    `json:"serial_number"`
	InstallDate     *time.Time `json:"install_date"`
	LastServiceDate *time.Time `json:"last_service_date"`
	NextServiceDate *time.Time `json:"next_service_date"`
	Notes           *string    `json:"notes"`
}

type Repository interface {
	Create(ctx context.Context, e *Equipment) error
	FindByID(ctx context.Context, id int64) (*Equipment, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Equipment, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Equipment, error)
	Update(ctx context.Context, e *Equipment) error
	Delete(ctx context.Context, id int64) (bool, error)
}
