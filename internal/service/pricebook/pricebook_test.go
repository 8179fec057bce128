// internal/service/pricebook/pricebook_test.go
package pricebook

import (
	"context"
	"sync"
	"testing"

	"fieldserve/internal/domain/pricebook"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePricebookRepo mirrors the conflict-skip semantics of the SQL copy:
// rows already present for (company, sku) are never duplicated.
type fakePricebookRepo struct {
	mu        sync.Mutex
	global    []pricebook.Entry
	byCompany map[int64]map[string]pricebook.CompanyEntry
	copies    int
}

func newFakePricebookRepo(global []pricebook.Entry) *fakePricebookRepo {
	return &fakePricebookRepo{
		global:    global,
		byCompany: map[int64]map[string]pricebook.CompanyEntry{},
	}
}

func (f *fakePricebookRepo) ListGlobal(ctx context.Context) ([]pricebook.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pricebook.Entry(nil), f.global...), nil
}

func (f *fakePricebookRepo) ListByCompany(ctx context.Context, companyID int64) ([]pricebook.CompanyEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []pricebook.CompanyEntry
	for _, e := range f.byCompany[companyID] {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakePricebookRepo) CopyGlobalToCompany(ctx context.Context, companyID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.copies++
	rows := f.byCompany[companyID]
	if rows == nil {
		rows = map[string]pricebook.CompanyEntry{}
		f.byCompany[companyID] = rows
	}
	for _, e := range f.global {
		if _, exists := rows[e.SKU]; exists {
			continue
		}
		rows[e.SKU] = pricebook.CompanyEntry{CompanyID: companyID, Entry: e}
	}
	return nil
}

func testGlobal() []pricebook.Entry {
	return []pricebook.Entry{
		{SKU: "HVAC-001", Category: "maintenance", TaskName: "Seasonal tune-up", StandardPrice: decimal.RequireFromString("189.00")},
		{SKU: "HVAC-002", Category: "repair", TaskName: "Capacitor replacement", StandardPrice: decimal.RequireFromString("249.00")},
		{SKU: "HVAC-003", Category: "install", TaskName: "Thermostat install", StandardPrice: decimal.RequireFromString("329.00")},
	}
}

func TestListForCompanyMaterializesOnFirstRead(t *testing.T) {
	repo := newFakePricebookRepo(testGlobal())
	s := NewPricebookService(repo, zap.NewNop())

	entries, err := s.ListForCompany(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, int64(1), e.CompanyID)
	}
	assert.Equal(t, 1, repo.copies)
}

func TestListForCompanySecondReadSkipsCopy(t *testing.T) {
	repo := newFakePricebookRepo(testGlobal())
	s := NewPricebookService(repo, zap.NewNop())

	_, err := s.ListForCompany(context.Background(), 1)
	require.NoError(t, err)
	_, err = s.ListForCompany(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.copies)
}

func TestListForCompanyIsolatesTenants(t *testing.T) {
	repo := newFakePricebookRepo(testGlobal())
	s := NewPricebookService(repo, zap.NewNop())

	a, err := s.ListForCompany(context.Background(), 1)
	require.NoError(t, err)
	b, err := s.ListForCompany(context.Background(), 2)
	require.NoError(t, err)

	assert.Len(t, a, 3)
	assert.Len(t, b, 3)
	for _, e := range b {
		assert.Equal(t, int64(2), e.CompanyID)
	}
}

// Concurrent first reads race to materialize the book; the conflict-skip
// copy guarantees exactly one row per global SKU no matter who wins.
func TestListForCompanyConcurrentFirstReads(t *testing.T) {
	repo := newFakePricebookRepo(testGlobal())
	s := NewPricebookService(repo, zap.NewNop())

	const n = 16
	var wg sync.WaitGroup
	results := make([][]pricebook.CompanyEntry, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.ListForCompany(context.Background(), 1)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 3, "reader %d", i)
	}

	final, err := s.ListForCompany(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, final, 3)

	seen := map[string]int{}
	for _, e := range final {
		seen[e.SKU]++
	}
	for sku, count := range seen {
		assert.Equal(t, 1, count, "sku %s duplicated", sku)
	}
}
