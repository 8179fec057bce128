// internal/service/job/job_test.go
package job

import (
	"context"
	"testing"
	"time"

	"fieldserve/internal/domain/company"
	"fieldserve/internal/domain/customer"
	"fieldserve/internal/domain/job"
	"fieldserve/internal/domain/user"
	xerrors "fieldserve/internal/pkg/errors"
	"fieldserve/internal/service/tenant"
	ws "fieldserve/internal/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeJobRepo struct {
	byID   map[int64]*job.Job
	nextID int64

	lastFrom, lastTo time.Time
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: map[int64]*job.Job{}, nextID: 1}
}

func (f *fakeJobRepo) Create(ctx context.Context, j *job.Job) error {
	j.ID = f.nextID
	f.nextID++
	cp := *j
	f.byID[j.ID] = &cp
	return nil
}

func (f *fakeJobRepo) FindByID(ctx context.Context, id int64) (*job.Job, error) {
	j, ok := f.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) ListByCompany(ctx context.Context, companyID int64) ([]job.Job, error) {
	return nil, nil
}

func (f *fakeJobRepo) ListByCustomer(ctx context.Context, customerID int64) ([]job.Job, error) {
	var out []job.Job
	for _, j := range f.byID {
		if j.CustomerID == customerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListScheduledBetween(ctx context.Context, companyID int64, from, to time.Time) ([]job.Job, error) {
	f.lastFrom, f.lastTo = from, to
	var out []job.Job
	for _, j := range f.byID {
		if j.ScheduledDate != nil && !j.ScheduledDate.Before(from) && j.ScheduledDate.Before(to) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Update(ctx context.Context, j *job.Job) error {
	if _, ok := f.byID[j.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *j
	f.byID[j.ID] = &cp
	return nil
}

func (f *fakeJobRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

type fakeCustomerRepo struct {
	byID map[int64]*customer.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *customer.Customer) error { return nil }
func (f *fakeCustomerRepo) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return c, nil
}
func (f *fakeCustomerRepo) ListByCompany(ctx context.Context, companyID int64) ([]customer.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(ctx context.Context, id int64) (bool, error)     { return false, nil }

type stubUserRepo struct{}

func (stubUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (stubUserRepo) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return nil, xerrors.ErrNotFound
}
func (stubUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, xerrors.ErrNotFound
}
func (stubUserRepo) CreateMembership(ctx context.Context, m *user.Membership) error { return nil }
func (stubUserRepo) FindMembershipByUser(ctx context.Context, userID int64) (*user.Membership, error) {
	return nil, xerrors.ErrNotFound
}

type stubCompanyRepo struct{}

func (stubCompanyRepo) Create(ctx context.Context, c *company.Company) error { return nil }
func (stubCompanyRepo) FindByID(ctx context.Context, id int64) (*company.Company, error) {
	return nil, xerrors.ErrNotFound
}
func (stubCompanyRepo) FindBySlug(ctx context.Context, slug string) (*company.Company, error) {
	return nil, xerrors.ErrNotFound
}

type capturingPublisher struct {
	events []ws.Event
	owners []int64
}

func (p *capturingPublisher) Publish(companyID int64, event ws.Event) {
	p.owners = append(p.owners, companyID)
	p.events = append(p.events, event)
}

func newTestService(t *testing.T) (*JobService, *fakeJobRepo, *capturingPublisher) {
	t.Helper()
	repo := newFakeJobRepo()
	custRepo := &fakeCustomerRepo{byID: map[int64]*customer.Customer{
		100: {ID: 100, CompanyID: 1, Name: "Alice"},
		200: {ID: 200, CompanyID: 2, Name: "Bob"},
	}}
	resolver := tenant.NewResolver(stubUserRepo{}, stubCompanyRepo{}, custRepo, zap.NewNop())
	pub := &capturingPublisher{}
	return NewJobService(repo, resolver, pub, zap.NewNop()), repo, pub
}

func TestCreateJobDefaults(t *testing.T) {
	s, _, pub := newTestService(t)

	j, err := s.CreateJob(context.Background(), 1, &job.CreateJobRequest{
		CustomerID: 100,
		Title:      "  AC tune-up ",
	})
	require.NoError(t, err)
	assert.Equal(t, "AC tune-up", j.Title)
	assert.Equal(t, job.StatusScheduled, j.Status)
	assert.Equal(t, job.PriorityMedium, j.Priority)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "created", pub.events[0].Type)
	assert.Equal(t, "job", pub.events[0].Resource)
	assert.Equal(t, []int64{1}, pub.owners)
}

func TestCreateJobPriorityAliases(t *testing.T) {
	s, _, _ := newTestService(t)

	j, err := s.CreateJob(context.Background(), 1, &job.CreateJobRequest{
		CustomerID: 100,
		Title:      "No heat",
		Priority:   "emergency",
	})
	require.NoError(t, err)
	assert.Equal(t, job.PriorityUrgent, j.Priority)

	j, err = s.CreateJob(context.Background(), 1, &job.CreateJobRequest{
		CustomerID: 100,
		Title:      "Filter change",
		Priority:   "normal",
	})
	require.NoError(t, err)
	assert.Equal(t, job.PriorityMedium, j.Priority)
}

func TestCreateJobCollectsAllFieldErrors(t *testing.T) {
	s, _, _ := newTestService(t)

	neg := -5
	_, err := s.CreateJob(context.Background(), 1, &job.CreateJobRequest{
		Priority:          "asap",
		EstimatedDuration: &neg,
	})
	require.Error(t, err)

	v, ok := xerrors.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, v.Fields, "title")
	assert.Contains(t, v.Fields, "customer_id")
	assert.Contains(t, v.Fields, "priority")
	assert.Contains(t, v.Fields, "estimated_duration")
}

// A job can never attach to another tenant's customer; the attempt reads
// as if the customer does not exist.
func TestCreateJobCrossTenantCustomer(t *testing.T) {
	s, repo, pub := newTestService(t)

	_, err := s.CreateJob(context.Background(), 1, &job.CreateJobRequest{
		CustomerID: 200,
		Title:      "Sneaky job",
	})
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Empty(t, repo.byID)
	assert.Empty(t, pub.events)
}

func TestGetJobCrossTenant(t *testing.T) {
	s, _, _ := newTestService(t)

	j, err := s.CreateJob(context.Background(), 2, &job.CreateJobRequest{
		CustomerID: 200,
		Title:      "Their job",
	})
	require.NoError(t, err)

	_, err = s.GetJob(context.Background(), 1, j.ID)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestUpdateJobStampsStartOnce(t *testing.T) {
	s, _, _ := newTestService(t)

	j, err := s.CreateJob(context.Background(), 1, &job.CreateJobRequest{
		CustomerID: 100,
		Title:      "Compressor swap",
	})
	require.NoError(t, err)

	started := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return started }

	inProgress := job.StatusInProgress
	j, err = s.UpdateJob(context.Background(), 1, j.ID, &job.UpdateJobRequest{Status: &inProgress})
	require.NoError(t, err)
	require.NotNil(t, j.StartedAt)
	assert.Equal(t, started, *j.StartedAt)

	// Re-submitting the same status must not re-stamp.
	s.now = func() time.Time { return started.Add(time.Hour) }
	j, err = s.UpdateJob(context.Background(), 1, j.ID, &job.UpdateJobRequest{Status: &inProgress})
	require.NoError(t, err)
	assert.Equal(t, started, *j.StartedAt)
}

func TestUpdateJobStampsCompletionOnce(t *testing.T) {
	s, _, _ := newTestService(t)

	j, err := s.CreateJob(context.Background(), 1, &job.CreateJobRequest{
		CustomerID: 100,
		Title:      "Duct cleaning",
	})
	require.NoError(t, err)

	done := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return done }

	completed := job.StatusCompleted
	j, err = s.UpdateJob(context.Background(), 1, j.ID, &job.UpdateJobRequest{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, j.CompletedDate)
	assert.Equal(t, done, *j.CompletedDate)

	// Cycle away and back: the original completion stamp survives.
	s.now = func() time.Time { return done.Add(24 * time.Hour) }
	scheduled := job.StatusScheduled
	_, err = s.UpdateJob(context.Background(), 1, j.ID, &job.UpdateJobRequest{Status: &scheduled})
	require.NoError(t, err)

	j, err = s.UpdateJob(context.Background(), 1, j.ID, &job.UpdateJobRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, done, *j.CompletedDate)
}

func TestListJobsTodayWindow(t *testing.T) {
	s, repo, _ := newTestService(t)

	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	mk := func(title string, at time.Time) {
		_, err := s.CreateJob(context.Background(), 1, &job.CreateJobRequest{
			CustomerID:    100,
			Title:         title,
			ScheduledDate: &at,
		})
		require.NoError(t, err)
	}
	mk("early today", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	mk("late today", time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC))
	mk("yesterday", time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC))
	mk("tomorrow", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))

	jobs, err := s.ListJobsToday(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), repo.lastFrom)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), repo.lastTo)
}

func TestDeleteJobPublishes(t *testing.T) {
	s, _, pub := newTestService(t)

	j, err := s.CreateJob(context.Background(), 1, &job.CreateJobRequest{
		CustomerID: 100,
		Title:      "Old job",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteJob(context.Background(), 1, j.ID))
	require.Len(t, pub.events, 2)
	assert.Equal(t, "deleted", pub.events[1].Type)

	err = s.DeleteJob(context.Background(), 1, j.ID)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}
