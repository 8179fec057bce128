// internal/domain/technician/dto.go
package technician

type CreateTechnicianRequest struct {
	Name        string   `json:"name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	UserID      *int64   `json:"user_id"`
	Specialties []string `json:"specialties"`
	Status      string   `json:"status"`
	HourlyRate  string   `json:"hourly_rate"`
}

type UpdateTechnicianRequest struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Specialties []string `json:"specialties"`
	Status      *string  `json:"status"`
	HourlyRate  *string  `json:"hourly_rate"`
}
