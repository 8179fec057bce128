// internal/service/customer/customer.go
package customer

import (
	"context"
	"strings"

	"fieldserve/internal/domain/customer"
	"fieldserve/internal/geo"
	xerrors "fieldserve/internal/pkg/errors"

	"go.uber.org/zap"
)

type CustomerService struct {
	customerRepo customer.Repository
	geocoder     geo.Geocoder
	logger       *zap.Logger
}

// NewCustomerService builds the service; geocoder may be nil, in which case
// coordinates are simply never backfilled.
func NewCustomerService(customerRepo customer.Repository, geocoder geo.Geocoder, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		geocoder:     geocoder,
		logger:       logger,
	}
}

// CreateCustomer stores a customer under the caller's resolved company.
// The company id always comes from the session, never from the payload.
func (s *CustomerService) CreateCustomer(ctx context.Context, companyID int64, req *customer.CreateCustomerRequest) (*customer.Customer, error) {
	v := xerrors.NewValidation()
	if strings.TrimSpace(req.Name) == "" {
		v.Add("name", "name is required")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	c := &customer.Customer{
		CompanyID: companyID,
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Notes:     req.Notes,
	}

	s.backfillCoordinates(ctx, c)

	if err := s.customerRepo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create customer", zap.Error(err))
		return nil, err
	}

	s.logger.Info("customer created",
		zap.Int64("customer_id", c.ID),
		zap.Int64("company_id", companyID),
	)
	return c, nil
}

// GetCustomer retrieves a customer, hiding other tenants' records as 404.
func (s *CustomerService) GetCustomer(ctx context.Context, companyID, customerID int64) (*customer.Customer, error) {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c.CompanyID != companyID {
		return nil, xerrors.ErrNotFound
	}
	return c, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, companyID int64) ([]customer.Customer, error) {
	return s.customerRepo.ListByCompany(ctx, companyID)
}

// UpdateCustomer applies a partial payload; unset fields stay unchanged,
// and neither id nor company can move.
func (s *CustomerService) UpdateCustomer(ctx context.Context, companyID, customerID int64, req *customer.UpdateCustomerRequest) (*customer.Customer, error) {
	c, err := s.GetCustomer(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	addressChanged := false
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			v := xerrors.NewValidation()
			v.Add("name", "name cannot be empty")
			return nil, v.Err()
		}
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}
	if req.Address != nil {
		c.Address = req.Address
		addressChanged = true
	}
	if req.City != nil {
		c.City = req.City
		addressChanged = true
	}
	if req.State != nil {
		c.State = req.State
		addressChanged = true
	}
	if req.Zip != nil {
		c.Zip = req.Zip
		addressChanged = true
	}
	if req.Notes != nil {
		c.Notes = req.Notes
	}

	if addressChanged {
		c.Lat, c.Lng = nil, nil
		s.backfillCoordinates(ctx, c)
	}

	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, companyID, customerID int64) error {
	if _, err := s.GetCustomer(ctx, companyID, customerID); err != nil {
		return err
	}
	found, err := s.customerRepo.Delete(ctx, customerID)
	if err != nil {
		return err
	}
	if !found {
		return xerrors.ErrNotFound
	}
	return nil
}

// backfillCoordinates is best effort: geocoding failures are logged and the
// customer is stored without coordinates.
func (s *CustomerService) backfillCoordinates(ctx context.Context, c *customer.Customer) {
	if s.geocoder == nil || c.Address == nil || *c.Address == "" {
		return
	}

	parts := []string{*c.Address}
	if c.City != nil {
		parts = append(parts, *c.City)
	}
	if c.State != nil {
		parts = append(parts, *c.State)
	}
	full := strings.Join(parts, ", ")

	result, err := s.geocoder.Geocode(ctx, full)
	if err != nil {
		s.logger.Warn("geocoding failed", zap.String("address", full), zap.Error(err))
		return
	}

	c.Lat, c.Lng = &result.Lat, &result.Lng
}
