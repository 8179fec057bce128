// internal/repository/postgres/equipment_repo.go
package postgres

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/equipment"
	xerrors "fieldserve/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EquipmentRepository struct {
	db *pgxpool.Pool
}

func NewEquipmentRepository(db *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

const equipmentColumns = `e.id, e.customer_id, e.type, e.brand, e.model, e.serial_number,
	e.install_date, e.last_service_date, e.next_service_date, e.notes`

func (r *EquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	query := `
		INSERT INTO equipment (
			customer_id, type, brand, model, serial_number,
			install_date, last_service_date, next_service_date, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		e.CustomerID, e.Type, e.Brand, e.Model, e.SerialNumber,
		e.InstallDate, e.LastServiceDate, e.NextServiceDate, e.Notes,
	).Scan(&e.ID)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create equipment: %w", err)
	}

	return nil
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id int64) (*equipment.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment e WHERE e.id = $1`

	e, err := scanEquipment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}
	return e, nil
}

// Tenant filter joins through customers, same as jobs and invoices.
func (r *EquipmentRepository) ListByCompany(ctx context.Context, companyID int64) ([]equipment.Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipment e
		JOIN customers c ON c.id = e.customer_id
		WHERE c.company_id = $1
		ORDER BY e.id
	`
	return r.queryEquipment(ctx, query, companyID)
}

func (r *EquipmentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]equipment.Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipment e
		WHERE e.customer_id = $1
		ORDER BY e.id
	`
	return r.queryEquipment(ctx, query, customerID)
}

func (r *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	query := `
		UPDATE equipment
		SET type = $2, brand = $3, model = $4, serial_number = $5,
		    install_date = $6, last_service_date = $7, next_service_date = $8, notes = $9
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		e.ID, e.Type, e.Brand, e.Model, e.SerialNumber,
		e.InstallDate, e.LastServiceDate, e.NextServiceDate, e.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete equipment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *EquipmentRepository) queryEquipment(ctx context.Context, query string, args ...any) ([]equipment.Equipment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	result := []equipment.Equipment{}
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		result = append(result, *e)
	}

	return result, rows.Err()
}

func scanEquipment(row pgx.Row) (*equipment.Equipment, error) {
	var e equipment.Equipment
	err := row.Scan(
		&e.ID, &e.CustomerID, &e.Type, &e.Brand, &e.Model, &e.SerialNumber,
		&e.InstallDate, &e.LastServiceDate, &e.NextServiceDate, &e.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
