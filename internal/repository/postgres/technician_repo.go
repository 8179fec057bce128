// internal/repository/postgres/technician_repo.go
package postgres

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/technician"
	xerrors "fieldserve/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TechnicianRepository struct {
	db *pgxpool.Pool
}

func NewTechnicianRepository(db *pgxpool.Pool) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

const technicianColumns = `id, company_id, user_id, name, email, phone, specialties, status, hourly_rate, created_at`

func (r *TechnicianRepository) Create(ctx context.Context, t *technician.Technician) error {
	query := `
		INSERT INTO technicians (
			company_id, user_id, name, email, phone, specialties, status, hourly_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		t.CompanyID, t.UserID, t.Name, t.Email, t.Phone, t.Specialties, t.Status, t.HourlyRate,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create technician: %w", err)
	}

	return nil
}

func (r *TechnicianRepository) FindByID(ctx context.Context, id int64) (*technician.Technician, error) {
	query := `SELECT ` + technicianColumns + ` FROM technicians WHERE id = $1`

	var t technician.Technician
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.CompanyID, &t.UserID, &t.Name, &t.Email, &t.Phone,
		&t.Specialties, &t.Status, &t.HourlyRate, &t.CreatedAt,
	)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}

	return &t, nil
}

func (r *TechnicianRepository) ListByCompany(ctx context.Context, companyID int64) ([]technician.Technician, error) {
	query := `SELECT ` + technicianColumns + ` FROM technicians WHERE company_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	defer rows.Close()

	technicians := []technician.Technician{}
	for rows.Next() {
		var t technician.Technician
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.UserID, &t.Name, &t.Email, &t.Phone,
			&t.Specialties, &t.Status, &t.HourlyRate, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan technician: %w", err)
		}
		technicians = append(technicians, t)
	}

	return technicians, rows.Err()
}

func (r *TechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	query := `
		UPDATE technicians
		SET name = $2, email = $3, phone = $4, specialties = $5, status = $6, hourly_rate = $7
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		t.ID, t.Name, t.Email, t.Phone, t.Specialties, t.Status, t.HourlyRate,
	)
	if err != nil {
		return fmt.Errorf("failed to update technician: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *TechnicianRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM technicians WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete technician: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
