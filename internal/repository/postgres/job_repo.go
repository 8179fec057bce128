// internal/repository/postgres/job_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"fieldserve/internal/domain/job"
	xerrors "fieldserve/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobRepository struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `j.id, j.customer_id, j.technician_id, j.title, j.description, j.status, j.priority,
	j.scheduled_date, j.started_at, j.completed_date, j.estimated_duration, j.actual_duration,
	j.address, j.notes, j.created_at`

func (r *JobRepository) Create(ctx context.Context, j *job.Job) error {
	query := `
		INSERT INTO jobs (
			customer_id, technician_id, title, description, status, priority,
			scheduled_date, estimated_duration, address, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		j.CustomerID, j.TechnicianID, j.Title, j.Description, j.Status, j.Priority,
		j.ScheduledDate, j.EstimatedDuration, j.Address, j.Notes,
	).Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id int64) (*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`

	j, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return j, nil
}

// ListByCompany joins through customers: jobs carry no company id of their
// own, so the tenant filter rides on customers.company_id.
func (r *JobRepository) ListByCompany(ctx context.Context, companyID int64) ([]job.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN customers c ON c.id = j.customer_id
		WHERE c.company_id = $1
		ORDER BY j.scheduled_date DESC NULLS LAST, j.id DESC
	`
	return r.queryJobs(ctx, query, companyID)
}

func (r *JobRepository) ListByCustomer(ctx context.Context, customerID int64) ([]job.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		WHERE j.customer_id = $1
		ORDER BY j.scheduled_date DESC NULLS LAST, j.id DESC
	`
	return r.queryJobs(ctx, query, customerID)
}

func (r *JobRepository) ListScheduledBetween(ctx context.Context, companyID int64, from, to time.Time) ([]job.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN customers c ON c.id = j.customer_id
		WHERE c.company_id = $1 AND j.scheduled_date >= $2 AND j.scheduled_date < $3
		ORDER BY j.scheduled_date
	`
	return r.queryJobs(ctx, query, companyID, from, to)
}

func (r *JobRepository) Update(ctx context.Context, j *job.Job) error {
	query := `
		UPDATE jobs
		SET technician_id = $2, title = $3, description = $4, status = $5, priority = $6,
		    scheduled_date = $7, started_at = $8, completed_date = $9,
		    estimated_duration = $10, actual_duration = $11, address = $12, notes = $13
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		j.ID, j.TechnicianID, j.Title, j.Description, j.Status, j.Priority,
		j.ScheduledDate, j.StartedAt, j.CompletedDate,
		j.EstimatedDuration, j.ActualDuration, j.Address, j.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *JobRepository) queryJobs(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}

	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.CustomerID, &j.TechnicianID, &j.Title, &j.Description, &j.Status, &j.Priority,
		&j.ScheduledDate, &j.StartedAt, &j.CompletedDate, &j.EstimatedDuration, &j.ActualDuration,
		&j.Address, &j.Notes, &j.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
