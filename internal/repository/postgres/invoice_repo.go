// internal/repository/postgres/invoice_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"fieldserve/internal/domain/invoice"
	xerrors "fieldserve/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

const invoiceColumns = `i.id, i.job_id, i.customer_id, i.invoice_number, i.status,
	i.subtotal, i.tax, i.total, i.due_date, i.paid_date, i.created_at`

// Create inserts the invoice and its items in a single transaction so a
// failed item insert never leaves a headerless invoice behind.
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO invoices (
			job_id, customer_id, invoice_number, status, subtotal, tax, total, due_date, paid_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err = tx.QueryRow(ctx, query,
		inv.JobID, inv.CustomerID, inv.InvoiceNumber, inv.Status,
		inv.Subtotal, inv.Tax, inv.Total, inv.DueDate, inv.PaidDate,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for idx := range inv.Items {
		it := &inv.Items[idx]
		it.InvoiceID = inv.ID
		if err := tx.QueryRow(ctx, itemQuery,
			it.InvoiceID, it.Description, it.Quantity, it.UnitPrice, it.Total,
		).Scan(&it.ID); err != nil {
			return fmt.Errorf("failed to create invoice item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id int64) (*invoice.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices i WHERE i.id = $1`

	inv, err := scanInvoice(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	items, err := r.listItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items

	return inv, nil
}

func (r *InvoiceRepository) ListByCompany(ctx context.Context, companyID int64) ([]invoice.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.company_id = $1
		ORDER BY i.created_at DESC
	`
	return r.queryInvoices(ctx, query, companyID)
}

func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID int64) ([]invoice.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices i
		WHERE i.customer_id = $1
		ORDER BY i.created_at DESC
	`
	return r.queryInvoices(ctx, query, customerID)
}

func (r *InvoiceRepository) ListPaidBetween(ctx context.Context, companyID int64, from, to time.Time) ([]invoice.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.company_id = $1 AND i.status = 'paid'
		  AND i.paid_date >= $2 AND i.paid_date < $3
		ORDER BY i.paid_date
	`
	return r.queryInvoices(ctx, query, companyID, from, to)
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET status = $2, due_date = $3, paid_date = $4
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, inv.ID, inv.Status, inv.DueDate, inv.PaidDate)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete invoice: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *InvoiceRepository) listItems(ctx context.Context, invoiceID int64) ([]invoice.Item, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price, total
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice items: %w", err)
	}
	defer rows.Close()

	items := []invoice.Item{}
	for rows.Next() {
		var it invoice.Item
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item: %w", err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *InvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]invoice.Invoice, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []invoice.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, *inv)
	}

	return invoices, rows.Err()
}

func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.JobID, &inv.CustomerID, &inv.InvoiceNumber, &inv.Status,
		&inv.Subtotal, &inv.Tax, &inv.Total, &inv.DueDate, &inv.PaidDate, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
