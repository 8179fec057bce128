// internal/domain/user/repository.go
package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Membership
	CreateMembership(ctx context.Context, m *Membership) error
	FindMembershipByUser(ctx context.Context, userID int64) (*Membership, error)
}
