// internal/repository/postgres/user_repo.go
package postgres

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/user"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (username, password_hash, display_name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		u.Username, u.PasswordHash, u.DisplayName, u.Email, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT id, username, password_hash, display_name, email, role, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
		SELECT id, username, password_hash, display_name, email, role, created_at
		FROM users
		WHERE username = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *UserRepository) CreateMembership(ctx context.Context, m *user.Membership) error {
	query := `
		INSERT INTO user_roles (user_id, company_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, company_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, m.UserID, m.CompanyID, m.Role); err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}
	return nil
}

// FindMembershipByUser returns the user's single company membership. The
// schema does not prevent multiple rows; the lowest-id row wins, matching
// the at-most-one assumption the rest of the system makes.
func (r *UserRepository) FindMembershipByUser(ctx context.Context, userID int64) (*user.Membership, error) {
	query := `
		SELECT user_id, company_id, role
		FROM user_roles
		WHERE user_id = $1
		ORDER BY company_id
		LIMIT 1
	`

	var m user.Membership
	err := r.db.QueryRow(ctx, query, userID).Scan(&m.UserID, &m.CompanyID, &m.Role)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}

	return &m, nil
}

func (r *UserRepository) scanUser(row interface{ Scan(...any) error }) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}
