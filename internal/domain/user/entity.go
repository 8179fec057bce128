// internal/domain/user/entity.go
package user

import "time"

const (
	RoleAdmin      = "admin"
	RoleOwner      = "owner"
	RoleDispatcher = "dispatcher"
	RoleTechnician = "technician"
)

var ValidRoles = []string{RoleAdmin, RoleOwner, RoleDispatcher, RoleTechnician}

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	DisplayName  string    `json:"name" db:"display_name"`
	Email        string    `json:"email" db:"email"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Membership links a user to the single company it may operate within.
// The schema allows multiple rows per user but the application assumes at
// most one; lookups take the lowest-id row.
type Membership struct {
	UserID    int64  `json:"user_id" db:"user_id"`
	CompanyID int64  `json:"company_id" db:"company_id"`
	Role      string `json:"role" db:"role"`
}

func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
