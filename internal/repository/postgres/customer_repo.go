// internal/repository/postgres/customer_repo.go
package postgres

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/customer"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, company_id, name, email, phone, address, city, state, zip, lat, lng, notes, created_at, updated_at`

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (
			company_id, name, email, phone, address, city, state, zip, lat, lng, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		c.CompanyID, c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip, c.Lat, c.Lng, c.Notes,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	var c customer.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City,
		&c.State, &c.Zip, &c.Lat, &c.Lng, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &c, nil
}

func (r *CustomerRepository) ListByCompany(ctx context.Context, companyID int64) ([]customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE company_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []customer.Customer{}
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City,
			&c.State, &c.Zip, &c.Lat, &c.Lng, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

// Update persists every mutable column. The company_id is intentionally not
// part of the SET list: once created a customer cannot move between tenants.
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, address = $5, city = $6,
		    state = $7, zip = $8, lat = $9, lng = $10, notes = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip, c.Lat, c.Lng, c.Notes,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
