// internal/domain/pricebook/entity.go
package pricebook

import (
	"context"

	"github.com/shopspring/decimal"
)

// Entry is one billable service SKU with tiered pricing.
type Entry struct {
	SKU             string          `json:"sku" db:"sku"`
	Category        string          `json:"category" db:"category"`
	TaskName        string          `json:"task_name" db:"task_name"`
	StandardPrice   decimal.Decimal `json:"standard_price" db:"standard_price"`
	MembershipPrice decimal.Decimal `json:"membership_price" db:"membership_price"`
	AfterHoursPrice decimal.Decimal `json:"after_hours_price" db:"after_hours_price"`
	EstHours        decimal.Decimal `json:"est_hours" db:"est_hours"`
}

// CompanyEntry is a per-tenant copy of a global entry, materialized lazily
// on the company's first pricebook read.
type CompanyEntry struct {
	CompanyID int64 `json:"company_id" db:"company_id"`
	Entry
}

type Repository interface {
	ListGlobal(ctx context.Context) ([]Entry, error)
	ListByCompany(ctx context.Context, companyID int64) ([]CompanyEntry, error)
	// CopyGlobalToCompany clones every global row into the company's scope.
	// Must be idempotent under concurrent callers: rows already present for
	// (companyID, sku) are skipped, never duplicated.
	CopyGlobalToCompany(ctx context.Context, companyID int64) error
}
