// internal/service/tenant/tenant.go
package tenant

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/company"
	"fieldserve/internal/domain/customer"
	"fieldserve/internal/domain/user"
	xerrors "fieldserve/internal/pkg/errors"

	"go.uber.org/zap"
)

// Resolver maps an authenticated user (or a URL slug) to the single company
// it may operate within, and verifies parent-entity ownership for writes.
// Every tenant-scoped query in the system funnels through the company id
// this resolver produces; it never yields a zero or absent filter.
type Resolver struct {
	userRepo    user.Repository
	companyRepo company.Repository
	custRepo    customer.Repository
	logger      *zap.Logger
}

func NewResolver(userRepo user.Repository, companyRepo company.Repository, custRepo customer.Repository, logger *zap.Logger) *Resolver {
	return &Resolver{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		custRepo:    custRepo,
		logger:      logger,
	}
}

// CompanyForUser resolves the acting user's company through the membership
// table. A user without a membership has no tenant access at all, which the
// API layer must surface as 403 rather than an empty result set.
func (r *Resolver) CompanyForUser(ctx context.Context, userID int64) (int64, error) {
	m, err := r.userRepo.FindMembershipByUser(ctx, userID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return 0, xerrors.ErrForbidden
		}
		return 0, fmt.Errorf("failed to resolve membership: %w", err)
	}
	return m.CompanyID, nil
}

// CompanyFromSlug resolves the tenant-prefixed route family. An unknown
// slug is a 404; it must never fall through to an unfiltered query.
func (r *Resolver) CompanyFromSlug(ctx context.Context, slug string) (*company.Company, error) {
	if slug == "" {
		return nil, xerrors.ErrNotFound
	}
	c, err := r.companyRepo.FindBySlug(ctx, slug)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve slug: %w", err)
	}
	return c, nil
}

// AssertCustomer verifies the customer exists and belongs to companyID.
// Cross-tenant access deliberately reports ErrNotFound, not forbidden, so
// the existence of another tenant's record is never revealed.
func (r *Resolver) AssertCustomer(ctx context.Context, customerID, companyID int64) (*customer.Customer, error) {
	c, err := r.custRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c.CompanyID != companyID {
		r.logger.Warn("cross-tenant access rejected",
			zap.Int64("customer_id", customerID),
			zap.Int64("customer_company", c.CompanyID),
			zap.Int64("caller_company", companyID),
		)
		return nil, xerrors.ErrNotFound
	}
	return c, nil
}
