// internal/pkg/session/types.go
package session

import "time"

// Data is the payload stored in Redis for one active session.
type Data struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	CompanyID int64     `json:"company_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
