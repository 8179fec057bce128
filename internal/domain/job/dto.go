// internal/domain/job/dto.go
package job

import "time"

type CreateJobRequest struct {
	CustomerID        int64      `json:"customer_id"`
	TechnicianID      *int64     `json:"technician_id"`
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	ScheduledDate     *time.Time `json:"scheduled_date"`
	EstimatedDuration *int       `json:"estimated_duration"`
	Address           *string    `json:"address"`
	Notes             *string    `json:"notes"`
}

type UpdateJobRequest struct {
	TechnicianID      *int64     `json:"technician_id"`
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Status            *string    `json:"status"`
	Priority          *string    `json:"priority"`
	ScheduledDate     *time.Time `json:"scheduled_date"`
	EstimatedDuration *int       `json:"estimated_duration"`
	ActualDuration    *int       `json:"actual_duration"`
	Address           *string    `json:"address"`
	Notes             *string    `json:"notes"`
}
