// internal/domain/dashboard/entity.go
package dashboard

import "github.com/shopspring/decimal"

type Stats struct {
	ActiveJobs        int             `json:"active_jobs"`
	MonthlyRevenue    decimal.Decimal `json:"monthly_revenue"`
	ActiveTechnicians int             `json:"active_technicians"`
	Satisfaction      float64         `json:"satisfaction"`
}
