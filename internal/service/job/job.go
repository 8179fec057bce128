// internal/service/job/job.go
package job

import (
	"context"
	"strings"
	"time"

	"fieldserve/internal/domain/job"
	xerrors "fieldserve/internal/pkg/errors"
	"fieldserve/internal/service/tenant"
	ws "fieldserve/internal/websocket"

	"go.uber.org/zap"
)

// EventPublisher pushes change events to the company's dashboard clients.
type EventPublisher interface {
	Publish(companyID int64, event ws.Event)
}

type JobService struct {
	jobRepo  job.Repository
	resolver *tenant.Resolver
	events   EventPublisher
	logger   *zap.Logger
	now      func() time.Time
}

// NewJobService builds the service; events may be nil.
func NewJobService(jobRepo job.Repository, resolver *tenant.Resolver, events EventPublisher, logger *zap.Logger) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		resolver: resolver,
		events:   events,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateJob creates a service call for one of the caller's customers.
// The customer must belong to the caller's company; a job can never attach
// to another tenant's customer.
func (s *JobService) CreateJob(ctx context.Context, companyID int64, req *job.CreateJobRequest) (*job.Job, error) {
	v := xerrors.NewValidation()

	if strings.TrimSpace(req.Title) == "" {
		v.Add("title", "title is required")
	}
	if req.CustomerID == 0 {
		v.Add("customer_id", "customer_id is required")
	}

	status := req.Status
	if status == "" {
		status = job.StatusScheduled
	} else if !job.IsValidStatus(status) {
		v.Add("status", "status must be one of scheduled, in_progress, completed, cancelled")
	}

	priority := job.PriorityMedium
	if req.Priority != "" {
		p, ok := job.NormalizePriority(req.Priority)
		if !ok {
			v.Add("priority", "priority must be one of low, medium, high, urgent")
		} else {
			priority = p
		}
	}

	if req.EstimatedDuration != nil && *req.EstimatedDuration < 0 {
		v.Add("estimated_duration", "estimated_duration cannot be negative")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.resolver.AssertCustomer(ctx, req.CustomerID, companyID); err != nil {
		return nil, err
	}

	j := &job.Job{
		CustomerID:        req.CustomerID,
		TechnicianID:      req.TechnicianID,
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		Status:            status,
		Priority:          priority,
		ScheduledDate:     req.ScheduledDate,
		EstimatedDuration: req.EstimatedDuration,
		Address:           req.Address,
		Notes:             req.Notes,
	}

	if err := s.jobRepo.Create(ctx, j); err != nil {
		s.logger.Error("failed to create job", zap.Error(err))
		return nil, err
	}

	s.publish(companyID, "created", j.ID)
	return j, nil
}

// GetJob resolves the job's tenant transitively through its customer.
func (s *JobService) GetJob(ctx context.Context, companyID, jobID int64) (*job.Job, error) {
	j, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.AssertCustomer(ctx, j.CustomerID, companyID); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JobService) ListJobs(ctx context.Context, companyID int64) ([]job.Job, error) {
	return s.jobRepo.ListByCompany(ctx, companyID)
}

// ListJobsToday returns jobs scheduled within the current calendar day.
func (s *JobService) ListJobsToday(ctx context.Context, companyID int64) ([]job.Job, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.jobRepo.ListScheduledBetween(ctx, companyID, start, start.AddDate(0, 0, 1))
}

func (s *JobService) ListJobsByCustomer(ctx context.Context, companyID, customerID int64) ([]job.Job, error) {
	if _, err := s.resolver.AssertCustomer(ctx, customerID, companyID); err != nil {
		return nil, err
	}
	return s.jobRepo.ListByCustomer(ctx, customerID)
}

// UpdateJob applies the partial payload. Status transitions carry side
// effects: entering in_progress stamps the start time, entering completed
// stamps the completion time. Both stamps are set only on the transition
// edge; repeating the same status leaves them untouched.
func (s *JobService) UpdateJob(ctx context.Context, companyID, jobID int64, req *job.UpdateJobRequest) (*job.Job, error) {
	j, err := s.GetJob(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}

	v := xerrors.NewValidation()

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			v.Add("title", "title cannot be empty")
		} else {
			j.Title = strings.TrimSpace(*req.Title)
		}
	}
	if req.Priority != nil {
		p, ok := job.NormalizePriority(*req.Priority)
		if !ok {
			v.Add("priority", "priority must be one of low, medium, high, urgent")
		} else {
			j.Priority = p
		}
	}
	if req.Status != nil && !job.IsValidStatus(*req.Status) {
		v.Add("status", "status must be one of scheduled, in_progress, completed, cancelled")
	}
	if req.EstimatedDuration != nil && *req.EstimatedDuration < 0 {
		v.Add("estimated_duration", "estimated_duration cannot be negative")
	}
	if req.ActualDuration != nil && *req.ActualDuration < 0 {
		v.Add("actual_duration", "actual_duration cannot be negative")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != j.Status {
		s.applyTransition(j, *req.Status)
	}

	if req.TechnicianID != nil {
		j.TechnicianID = req.TechnicianID
	}
	if req.Description != nil {
		j.Description = req.Description
	}
	if req.ScheduledDate != nil {
		j.ScheduledDate = req.ScheduledDate
	}
	if req.EstimatedDuration != nil {
		j.EstimatedDuration = req.EstimatedDuration
	}
	if req.ActualDuration != nil {
		j.ActualDuration = req.ActualDuration
	}
	if req.Address != nil {
		j.Address = req.Address
	}
	if req.Notes != nil {
		j.Notes = req.Notes
	}

	if err := s.jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}

	s.publish(companyID, "updated", j.ID)
	return j, nil
}

func (s *JobService) DeleteJob(ctx context.Context, companyID, jobID int64) error {
	if _, err := s.GetJob(ctx, companyID, jobID); err != nil {
		return err
	}
	found, err := s.jobRepo.Delete(ctx, jobID)
	if err != nil {
		return err
	}
	if !found {
		return xerrors.ErrNotFound
	}
	s.publish(companyID, "deleted", jobID)
	return nil
}

// applyTransition sets the new status and stamps timestamps once. There is
// no enforced state machine: any status may follow any status.
func (s *JobService) applyTransition(j *job.Job, newStatus string) {
	j.Status = newStatus

	switch newStatus {
	case job.StatusInProgress:
		if j.StartedAt == nil {
			t := s.now()
			j.StartedAt = &t
		}
	case job.StatusCompleted:
		if j.CompletedDate == nil {
			t := s.now()
			j.CompletedDate = &t
		}
	}
}

func (s *JobService) publish(companyID int64, eventType string, id int64) {
	if s.events == nil {
		return
	}
	s.events.Publish(companyID, ws.Event{Type: eventType, Resource: "job", ID: id})
}
