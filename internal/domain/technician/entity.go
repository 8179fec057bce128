// internal/domain/technician/entity.go
package technician

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOff      = "off"
)

var ValidStatuses = []string{StatusActive, StatusInactive, StatusOff}

type Technician struct {
	ID          int64           `json:"id" db:"id"`
	CompanyID   int64           `json:"company_id" db:"company_id"`
	UserID      *int64          `json:"user_id,omitempty" db:"user_id"`
	Name        string          `json:"name" db:"name"`
	Email       *string         `json:"email,omitempty" db:"email"`
	Phone       *string         `json:"phone,omitempty" db:"phone"`
	Specialties pq.StringArray  `json:"specialties" db:"specialties"`
	Status      string          `json:"status" db:"status"`
	HourlyRate  decimal.Decimal `json:"hourly_rate" db:"hourly_rate"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
