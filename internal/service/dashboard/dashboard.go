// internal/service/dashboard/dashboard.go
package dashboard

import (
	"context"
	"time"

	"fieldserve/internal/domain/dashboard"
	"fieldserve/internal/domain/invoice"
	"fieldserve/internal/domain/job"
	"fieldserve/internal/domain/technician"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Satisfaction has no backing data yet; the dashboard shows a fixed figure.
const staticSatisfaction = 4.8

// DashboardService aggregates in application code rather than SQL. Fine at
// this data scale; revisit if companies grow past a few thousand rows.
type DashboardService struct {
	jobRepo     job.Repository
	invoiceRepo invoice.Repository
	techRepo    technician.Repository
	logger      *zap.Logger
	now         func() time.Time
}

func NewDashboardService(jobRepo job.Repository, invoiceRepo invoice.Repository, techRepo technician.Repository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		jobRepo:     jobRepo,
		invoiceRepo: invoiceRepo,
		techRepo:    techRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Stats computes the company dashboard: active job count, revenue from
// invoices paid this calendar month, and active technician count.
func (s *DashboardService) Stats(ctx context.Context, companyID int64) (*dashboard.Stats, error) {
	jobs, err := s.jobRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	activeJobs := 0
	for _, j := range jobs {
		if j.Status == job.StatusScheduled || j.Status == job.StatusInProgress {
			activeJobs++
		}
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	paid, err := s.invoiceRepo.ListPaidBetween(ctx, companyID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, inv := range paid {
		revenue = revenue.Add(inv.Total)
	}

	techs, err := s.techRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	activeTechs := 0
	for _, t := range techs {
		if t.Status == technician.StatusActive {
			activeTechs++
		}
	}

	return &dashboard.Stats{
		ActiveJobs:        activeJobs,
		MonthlyRevenue:    revenue,
		ActiveTechnicians: activeTechs,
		Satisfaction:      staticSatisfaction,
	}, nil
}
