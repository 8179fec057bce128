// internal/repository/postgres/pricebook_repo.go
package postgres

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/pricebook"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PricebookRepository struct {
	db *pgxpool.Pool
}

func NewPricebookRepository(db *pgxpool.Pool) *PricebookRepository {
	return &PricebookRepository{db: db}
}

const pricebookColumns = `sku, category, task_name, standard_price, membership_price, after_hours_price, est_hours`

func (r *PricebookRepository) ListGlobal(ctx context.Context) ([]pricebook.Entry, error) {
	query := `SELECT ` + pricebookColumns + ` FROM global_pricebook ORDER BY sku`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list global pricebook: %w", err)
	}
	defer rows.Close()

	entries := []pricebook.Entry{}
	for rows.Next() {
		var e pricebook.Entry
		if err := rows.Scan(
			&e.SKU, &e.Category, &e.TaskName,
			&e.StandardPrice, &e.MembershipPrice, &e.AfterHoursPrice, &e.EstHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pricebook entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *PricebookRepository) ListByCompany(ctx context.Context, companyID int64) ([]pricebook.CompanyEntry, error) {
	query := `
		SELECT company_id, ` + pricebookColumns + `
		FROM company_pricebook
		WHERE company_id = $1
		ORDER BY sku
	`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company pricebook: %w", err)
	}
	defer rows.Close()

	entries := []pricebook.CompanyEntry{}
	for rows.Next() {
		var e pricebook.CompanyEntry
		if err := rows.Scan(
			&e.CompanyID, &e.SKU, &e.Category, &e.TaskName,
			&e.StandardPrice, &e.MembershipPrice, &e.AfterHoursPrice, &e.EstHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pricebook entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CopyGlobalToCompany clones the global catalog into the company's scope.
// The unique constraint on (company_id, sku) plus ON CONFLICT DO NOTHING
// makes concurrent first reads idempotent: one statement, no lock needed.
func (r *PricebookRepository) CopyGlobalToCompany(ctx context.Context, companyID int64) error {
	query := `
		INSERT INTO company_pricebook (
			company_id, sku, category, task_name,
			standard_price, membership_price, after_hours_price, est_hours
		)
		SELECT $1, sku, category, task_name,
		       standard_price, membership_price, after_hours_price, est_hours
		FROM global_pricebook
		ON CONFLICT (company_id, sku) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, companyID); err != nil {
		return fmt.Errorf("failed to copy pricebook for company %d: %w", companyID, err)
	}
	return nil
}
