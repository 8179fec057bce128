// internal/domain/job/entity.go
package job

import "time"

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var ValidStatuses = []string{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled}

// A job carries no company id of its own; its tenant is derived through the
// owning customer. Every tenant-scoped query joins through customers.
type Job struct {
	ID                int64      `json:"id" db:"id"`
	CustomerID        int64      `json:"customer_id" db:"customer_id"`
	TechnicianID      *int64     `json:"technician_id,omitempty" db:"technician_id"`
	Title             string     `json:"title" db:"title"`
	Description       *string    `json:"description,omitempty" db:"description"`
	Status            string     `json:"status" db:"status"`
	Priority          string     `json:"priority" db:"priority"`
	ScheduledDate     *time.Time `json:"scheduled_date,omitempty" db:"scheduled_date"`
	StartedAt         *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedDate     *time.Time `json:"completed_date,omitempty" db:"completed_date"`
	EstimatedDuration *int       `json:"estimated_duration,omitempty" db:"estimated_duration"`
	ActualDuration    *int       `json:"actual_duration,omitempty" db:"actual_duration"`
	Address           *string    `json:"address,omitempty" db:"address"`
	Notes             *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}

func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// NormalizePriority canonicalizes the accepted aliases: "normal" is stored
// as medium and "emergency" as urgent. Returns false for anything else.
func NormalizePriority(p string) (string, bool) {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, true
	case "normal":
		return PriorityMedium, true
	case "emergency":
		return PriorityUrgent, true
	}
	return "", false
}
