// internal/domain/invoice/entity.go
package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

var ValidStatuses = []string{StatusDraft, StatusSent, StatusPaid, StatusOverdue}

// Invoice tenancy is transitive through the customer, same as jobs.
type Invoice struct {
	ID            int64           `json:"id" db:"id"`
	JobID         *int64          `json:"job_id,omitempty" db:"job_id"`
	CustomerID    int64           `json:"customer_id" db:"customer_id"`
	InvoiceNumber string          `json:"invoice_number" db:"invoice_number"`
	Status        string          `json:"status" db:"status"`
	Subtotal      decimal.Decimal `json:"subtotal" db:"subtotal"`
	Tax           decimal.Decimal `json:"tax" db:"tax"`
	Total         decimal.Decimal `json:"total" db:"total"`
	DueDate       *time.Time      `json:"due_date,omitempty" db:"due_date"`
	PaidDate      *time.Time      `json:"paid_date,omitempty" db:"paid_date"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	Items         []Item          `json:"items,omitempty"`
}

type Item struct {
	ID          int64           `json:"id" db:"id"`
	InvoiceID   int64           `json:"invoice_id" db:"invoice_id"`
	Description string          `json:"description" db:"description"`
	Quantity    decimal.Decimal `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" db:"unit_price"`
	Total       decimal.Decimal `json:"total" db:"total"`
}

func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
