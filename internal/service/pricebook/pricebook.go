// internal/service/pricebook/pricebook.go
package pricebook

import (
	"context"

	"fieldserve/internal/domain/pricebook"

	"go.uber.org/zap"
)

type PricebookService struct {
	pbRepo pricebook.Repository
	logger *zap.Logger
}

func NewPricebookService(pbRepo pricebook.Repository, logger *zap.Logger) *PricebookService {
	return &PricebookService{pbRepo: pbRepo, logger: logger}
}

func (s *PricebookService) ListGlobal(ctx context.Context) ([]pricebook.Entry, error) {
	return s.pbRepo.ListGlobal(ctx)
}

// ListForCompany returns the company's pricebook, materializing it from the
// global catalog on first read. The copy is conflict-skipping, so two
// concurrent first reads both end up with exactly one row per global SKU.
func (s *PricebookService) ListForCompany(ctx context.Context, companyID int64) ([]pricebook.CompanyEntry, error) {
	entries, err := s.pbRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}

	if err := s.pbRepo.CopyGlobalToCompany(ctx, companyID); err != nil {
		return nil, err
	}

	s.logger.Info("company pricebook materialized", zap.Int64("company_id", companyID))
	return s.pbRepo.ListByCompany(ctx, companyID)
}
