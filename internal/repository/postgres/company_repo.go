// internal/repository/postgres/company_repo.go
package postgres

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/company"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepository struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (name, slug, address, city, state, zip, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		c.Name, c.Slug, c.Address, c.City, c.State, c.Zip, c.Phone, c.Email,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id int64) (*company.Company, error) {
	query := `
		SELECT id, name, slug, address, city, state, zip, phone, email, created_at
		FROM companies
		WHERE id = $1
	`
	return r.scanCompany(ctx, query, id)
}

func (r *CompanyRepository) FindBySlug(ctx context.Context, slug string) (*company.Company, error) {
	query := `
		SELECT id, name, slug, address, city, state, zip, phone, email, created_at
		FROM companies
		WHERE slug = $1
	`
	return r.scanCompany(ctx, query, slug)
}

func (r *CompanyRepository) scanCompany(ctx context.Context, query string, arg any) (*company.Company, error) {
	var c company.Company
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Address, &c.City, &c.State, &c.Zip, &c.Phone, &c.Email, &c.CreatedAt,
	)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return &c, nil
}
