// internal/domain/customer/entity.go
package customer

import "time"

type Customer struct {
	ID        int64      `json:"id" db:"id"`
	CompanyID int64      `json:"company_id" db:"company_id"`
	Name      string     `json:"name" db:"name"`
	Email     *string    `json:"email,omitempty" db:"email"`
	Phone     *string    `json:"phone,omitempty" db:"phone"`
	Address   *string    `json:"address,omitempty" db:"address"`
	City      *string    `json:"city,omitempty" db:"city"`
	State     *string    `json:"state,omitempty" db:"state"`
	Zip       *string    `json:"zip,omitempty" db:"zip"`
	Lat       *float64   `json:"lat,omitempty" db:"lat"`
	Lng       *float64   `json:"lng,omitempty" db:"lng"`
	Notes     *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
