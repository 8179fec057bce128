// internal/domain/user/dto.go
package user

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type MeResponse struct {
	User      *User `json:"user"`
	CompanyID int64 `json:"company_id"`
}
