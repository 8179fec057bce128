// internal/app/fakes_test.go
package app

import (
	"context"
	"sync"
	"time"

	"fieldserve/internal/domain/company"
	"fieldserve/internal/domain/customer"
	"fieldserve/internal/domain/equipment"
	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/domain/invoice"
	"fieldserve/internal/domain/job"
	"fieldserve/internal/domain/pricebook"
	"fieldserve/internal/domain/technician"
	"fieldserve/internal/domain/user"
	xerrors "fieldserve/internal/pkg/errors"
)

// In-memory repositories backing the router tests. They implement the same
// error contract as the postgres implementations: missing rows surface
// ErrNotFound and unique violations surface ErrConflict.

type memUserRepo struct {
	mu          sync.Mutex
	users       map[int64]*user.User
	memberships map[int64]*user.Membership
	nextID      int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*user.User{}, memberships: map[int64]*user.Membership{}, nextID: 1}
}

func (r *memUserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return xerrors.ErrConflict
		}
	}
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (r *memUserRepo) CreateMembership(ctx context.Context, m *user.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.memberships[m.UserID] = &cp
	return nil
}

func (r *memUserRepo) FindMembershipByUser(ctx context.Context, userID int64) (*user.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.memberships[userID]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

type memCompanyRepo struct {
	mu     sync.Mutex
	byID   map[int64]*company.Company
	nextID int64
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{byID: map[int64]*company.Company{}, nextID: 1}
}

func (r *memCompanyRepo) Create(ctx context.Context, c *company.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Slug == c.Slug {
			return xerrors.ErrConflict
		}
	}
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) FindByID(ctx context.Context, id int64) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) FindBySlug(ctx context.Context, slug string) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

type memCustomerRepo struct {
	mu     sync.Mutex
	byID   map[int64]*customer.Customer
	nextID int64
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byID: map[int64]*customer.Customer{}, nextID: 1}
}

func (r *memCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = time.Now()
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) ListByCompany(ctx context.Context, companyID int64) ([]customer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []customer.Customer{}
	for _, c := range r.byID {
		if c.CompanyID == companyID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memCustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memTechnicianRepo struct {
	mu     sync.Mutex
	byID   map[int64]*technician.Technician
	nextID int64
}

func newMemTechnicianRepo() *memTechnicianRepo {
	return &memTechnicianRepo{byID: map[int64]*technician.Technician{}, nextID: 1}
}

func (r *memTechnicianRepo) Create(ctx context.Context, t *technician.Technician) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.byID[t.ID] = &cp
	return nil
}

func (r *memTechnicianRepo) FindByID(ctx context.Context, id int64) (*technician.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTechnicianRepo) ListByCompany(ctx context.Context, companyID int64) ([]technician.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []technician.Technician{}
	for _, t := range r.byID {
		if t.CompanyID == companyID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTechnicianRepo) Update(ctx context.Context, t *technician.Technician) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[t.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *t
	r.byID[t.ID] = &cp
	return nil
}

func (r *memTechnicianRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memJobRepo struct {
	mu        sync.Mutex
	byID      map[int64]*job.Job
	customers *memCustomerRepo
	nextID    int64
}

func newMemJobRepo(customers *memCustomerRepo) *memJobRepo {
	return &memJobRepo{byID: map[int64]*job.Job{}, customers: customers, nextID: 1}
}

func (r *memJobRepo) companyOf(customerID int64) int64 {
	c, err := r.customers.FindByID(context.Background(), customerID)
	if err != nil {
		return 0
	}
	return c.CompanyID
}

func (r *memJobRepo) Create(ctx context.Context, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = r.nextID
	r.nextID++
	j.CreatedAt = time.Now()
	cp := *j
	r.byID[j.ID] = &cp
	return nil
}

func (r *memJobRepo) FindByID(ctx context.Context, id int64) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *memJobRepo) ListByCompany(ctx context.Context, companyID int64) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []job.Job{}
	for _, j := range r.byID {
		if r.companyOf(j.CustomerID) == companyID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *memJobRepo) ListByCustomer(ctx context.Context, customerID int64) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []job.Job{}
	for _, j := range r.byID {
		if j.CustomerID == customerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *memJobRepo) ListScheduledBetween(ctx context.Context, companyID int64, from, to time.Time) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []job.Job{}
	for _, j := range r.byID {
		if r.companyOf(j.CustomerID) != companyID {
			continue
		}
		if j.ScheduledDate != nil && !j.ScheduledDate.Before(from) && j.ScheduledDate.Before(to) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *memJobRepo) Update(ctx context.Context, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[j.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *j
	r.byID[j.ID] = &cp
	return nil
}

func (r *memJobRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memInvoiceRepo struct {
	mu        sync.Mutex
	byID      map[int64]*invoice.Invoice
	numbers   map[string]bool
	customers *memCustomerRepo
	nextID    int64
}

func newMemInvoiceRepo(customers *memCustomerRepo) *memInvoiceRepo {
	return &memInvoiceRepo{byID: map[int64]*invoice.Invoice{}, numbers: map[string]bool{}, customers: customers, nextID: 1}
}

func (r *memInvoiceRepo) companyOf(customerID int64) int64 {
	c, err := r.customers.FindByID(context.Background(), customerID)
	if err != nil {
		return 0
	}
	return c.CompanyID
}

func (r *memInvoiceRepo) Create(ctx context.Context, inv *invoice.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.numbers[inv.InvoiceNumber] {
		return xerrors.ErrConflict
	}
	r.numbers[inv.InvoiceNumber] = true
	inv.ID = r.nextID
	r.nextID++
	inv.CreatedAt = time.Now()
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) FindByID(ctx context.Context, id int64) (*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *memInvoiceRepo) ListByCompany(ctx context.Context, companyID int64) ([]invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []invoice.Invoice{}
	for _, inv := range r.byID {
		if r.companyOf(inv.CustomerID) == companyID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *memInvoiceRepo) ListByCustomer(ctx context.Context, customerID int64) ([]invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []invoice.Invoice{}
	for _, inv := range r.byID {
		if inv.CustomerID == customerID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *memInvoiceRepo) ListPaidBetween(ctx context.Context, companyID int64, from, to time.Time) ([]invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []invoice.Invoice{}
	for _, inv := range r.byID {
		if r.companyOf(inv.CustomerID) != companyID || inv.Status != invoice.StatusPaid {
			continue
		}
		if inv.PaidDate != nil && !inv.PaidDate.Before(from) && inv.PaidDate.Before(to) {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *memInvoiceRepo) Update(ctx context.Context, inv *invoice.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[inv.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memInventoryRepo struct {
	mu     sync.Mutex
	byID   map[int64]*inventory.Item
	skus   map[string]bool
	nextID int64
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{byID: map[int64]*inventory.Item{}, skus: map[string]bool{}, nextID: 1}
}

func (r *memInventoryRepo) Create(ctx context.Context, it *inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.skus[it.SKU] {
		return xerrors.ErrConflict
	}
	r.skus[it.SKU] = true
	it.ID = r.nextID
	r.nextID++
	cp := *it
	r.byID[it.ID] = &cp
	return nil
}

func (r *memInventoryRepo) FindByID(ctx context.Context, id int64) (*inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *memInventoryRepo) List(ctx context.Context) ([]inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []inventory.Item{}
	for _, it := range r.byID {
		out = append(out, *it)
	}
	return out, nil
}

func (r *memInventoryRepo) ListLowStock(ctx context.Context) ([]inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []inventory.Item{}
	for _, it := range r.byID {
		if it.Quantity <= it.MinQuantity {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *memInventoryRepo) Update(ctx context.Context, it *inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[it.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *it
	r.byID[it.ID] = &cp
	return nil
}

func (r *memInventoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memEquipmentRepo struct {
	mu        sync.Mutex
	byID      map[int64]*equipment.Equipment
	customers *memCustomerRepo
	nextID    int64
}

func newMemEquipmentRepo(customers *memCustomerRepo) *memEquipmentRepo {
	return &memEquipmentRepo{byID: map[int64]*equipment.Equipment{}, customers: customers, nextID: 1}
}

func (r *memEquipmentRepo) Create(ctx context.Context, e *equipment.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *memEquipmentRepo) FindByID(ctx context.Context, id int64) (*equipment.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memEquipmentRepo) ListByCompany(ctx context.Context, companyID int64) ([]equipment.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []equipment.Equipment{}
	for _, e := range r.byID {
		c, err := r.customers.FindByID(ctx, e.CustomerID)
		if err == nil && c.CompanyID == companyID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memEquipmentRepo) ListByCustomer(ctx context.Context, customerID int64) ([]equipment.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []equipment.Equipment{}
	for _, e := range r.byID {
		if e.CustomerID == customerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memEquipmentRepo) Update(ctx context.Context, e *equipment.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[e.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *memEquipmentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memPricebookRepo struct {
	mu        sync.Mutex
	global    []pricebook.Entry
	byCompany map[int64]map[string]pricebook.CompanyEntry
}

func newMemPricebookRepo(global []pricebook.Entry) *memPricebookRepo {
	return &memPricebookRepo{global: global, byCompany: map[int64]map[string]pricebook.CompanyEntry{}}
}

func (r *memPricebookRepo) ListGlobal(ctx context.Context) ([]pricebook.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]pricebook.Entry(nil), r.global...), nil
}

func (r *memPricebookRepo) ListByCompany(ctx context.Context, companyID int64) ([]pricebook.CompanyEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []pricebook.CompanyEntry
	for _, e := range r.byCompany[companyID] {
		out = append(out, e)
	}
	return out, nil
}

func (r *memPricebookRepo) CopyGlobalToCompany(ctx context.Context, companyID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.byCompany[companyID]
	if rows == nil {
		rows = map[string]pricebook.CompanyEntry{}
		r.byCompany[companyID] = rows
	}
	for _, e := range r.global {
		if _, exists := rows[e.SKU]; exists {
			continue
		}
		rows[e.SKU] = pricebook.CompanyEntry{CompanyID: companyID, Entry: e}
	}
	return nil
}
