// internal/service/equipment/equipment.go
package equipment

import (
	"context"
	"strings"

	"fieldserve/internal/domain/equipment"
	xerrors "fieldserve/internal/pkg/errors"
	"fieldserve/internal/service/tenant"

	"go.uber.org/zap"
)

type EquipmentService struct {
	equipRepo equipment.Repository
	resolver  *tenant.Resolver
	logger    *zap.Logger
}

func NewEquipmentService(equipRepo equipment.Repository, resolver *tenant.Resolver, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{equipRepo: equipRepo, resolver: resolver, logger: logger}
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, companyID int64, req *equipment.CreateEquipmentRequest) (*equipment.Equipment, error) {
	v := xerrors.NewValidation()
	if req.CustomerID == 0 {
		v.Add("customer_id", "customer_id is required")
	}
	if strings.TrimSpace(req.Type) == "" {
		v.Add("type", "type is required")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.resolver.AssertCustomer(ctx, req.CustomerID, companyID); err != nil {
		return nil, err
	}

	e := &equipment.Equipment{
		CustomerID:      req.CustomerID,
		Type:            strings.TrimSpace(req.Type),
		Brand:           req.Brand,
		Model:           req.Model,
		SerialNumber:    req.SerialNumber,
		InstallDate:     req.InstallDate,
		LastServiceDate: req.LastServiceDate,
		NextServiceDate: req.NextServiceDate,
		Notes:           req.Notes,
	}

	if err := s.equipRepo.Create(ctx, e); err != nil {
		s.logger.Error("failed to create equipment", zap.Error(err))
		return nil, err
	}
	return e, nil
}

func (s *EquipmentService) GetEquipment(ctx context.Context, companyID, id int64) (*equipment.Equipment, error) {
	e, err := s.equipRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.AssertCustomer(ctx, e.CustomerID, companyID); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EquipmentService) ListEquipment(ctx context.Context, companyID int64) ([]equipment.Equipment, error) {
	return s.equipRepo.ListByCompany(ctx, companyID)
}

func (s *EquipmentService) ListEquipmentByCustomer(ctx context.Context, companyID, customerID int64) ([]equipment.Equipment, error) {
	if _, err := s.resolver.AssertCustomer(ctx, customerID, companyID); err != nil {
		return nil, err
	}
	return s.equipRepo.ListByCustomer(ctx, customerID)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, companyID, id int64, req *equipment.UpdateEquipmentRequest) (*equipment.Equipment, error) {
	e, err := s.GetEquipment(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if strings.TrimSpace(*req.Type) == "" {
			v := xerrors.NewValidation()
			v.Add("type", "type cannot be empty")
			return nil, v.Err()
		}
		e.Type = strings.TrimSpace(*req.Type)
	}
	if req.Brand != nil {
		e.Brand = req.Brand
	}
	if req.Model != nil {
		e.Model = req.Model
	}
	if req.SerialNumber != nil {
		e.SerialNumber = req.SerialNumber
	}
	if req.InstallDate != nil {
		e.InstallDate = req.InstallDate
	}
	if req.LastServiceDate != nil {
		e.LastServiceDate = req.LastServiceDate
	}
	if req.NextServiceDate != nil {
		e.NextServiceDate = req.NextServiceDate
	}
	if req.Notes != nil {
		e.Notes = req.Notes
	}

	if err := s.equipRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, companyID, id int64) error {
	if _, err := s.GetEquipment(ctx, companyID, id); err != nil {
		return err
	}
	found, err := s.equipRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return xerrors.ErrNotFound
	}
	return nil
}
