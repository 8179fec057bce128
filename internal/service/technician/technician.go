// internal/service/technician/technician.go
package technician

import (
	"context"
	"strings"

	"fieldserve/internal/domain/technician"
	xerrors "fieldserve/internal/pkg/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TechnicianService struct {
	techRepo technician.Repository
	logger   *zap.Logger
}

func NewTechnicianService(techRepo technician.Repository, logger *zap.Logger) *TechnicianService {
	return &TechnicianService{techRepo: techRepo, logger: logger}
}

func (s *TechnicianService) CreateTechnician(ctx context.Context, companyID int64, req *technician.CreateTechnicianRequest) (*technician.Technician, error) {
	v := xerrors.NewValidation()

	if strings.TrimSpace(req.Name) == "" {
		v.Add("name", "name is required")
	}

	status := req.Status
	if status == "" {
		status = technician.StatusActive
	} else if !technician.IsValidStatus(status) {
		v.Add("status", "status must be one of active, inactive, off")
	}

	rate := decimal.Zero
	if req.HourlyRate != "" {
		parsed, err := decimal.NewFromString(req.HourlyRate)
		if err != nil || parsed.IsNegative() {
			v.Add("hourly_rate", "hourly_rate must be a non-negative decimal")
		} else {
			rate = parsed
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	t := &technician.Technician{
		CompanyID:   companyID,
		UserID:      req.UserID,
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		Phone:       req.Phone,
		Specialties: req.Specialties,
		Status:      status,
		HourlyRate:  rate,
	}

	if err := s.techRepo.Create(ctx, t); err != nil {
		s.logger.Error("failed to create technician", zap.Error(err))
		return nil, err
	}

	return t, nil
}

func (s *TechnicianService) GetTechnician(ctx context.Context, companyID, id int64) (*technician.Technician, error) {
	t, err := s.techRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.CompanyID != companyID {
		return nil, xerrors.ErrNotFound
	}
	return t, nil
}

func (s *TechnicianService) ListTechnicians(ctx context.Context, companyID int64) ([]technician.Technician, error) {
	return s.techRepo.ListByCompany(ctx, companyID)
}

func (s *TechnicianService) UpdateTechnician(ctx context.Context, companyID, id int64, req *technician.UpdateTechnicianRequest) (*technician.Technician, error) {
	t, err := s.GetTechnician(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	v := xerrors.NewValidation()

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			v.Add("name", "name cannot be empty")
		} else {
			t.Name = strings.TrimSpace(*req.Name)
		}
	}
	if req.Status != nil {
		if !technician.IsValidStatus(*req.Status) {
			v.Add("status", "status must be one of active, inactive, off")
		} else {
			t.Status = *req.Status
		}
	}
	if req.HourlyRate != nil {
		parsed, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil || parsed.IsNegative() {
			v.Add("hourly_rate", "hourly_rate must be a non-negative decimal")
		} else {
			t.HourlyRate = parsed
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if req.Email != nil {
		t.Email = req.Email
	}
	if req.Phone != nil {
		t.Phone = req.Phone
	}
	if req.Specialties != nil {
		t.Specialties = req.Specialties
	}

	if err := s.techRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TechnicianService) DeleteTechnician(ctx context.Context, companyID, id int64) error {
	if _, err := s.GetTechnician(ctx, companyID, id); err != nil {
		return err
	}
	found, err := s.techRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return xerrors.ErrNotFound
	}
	return nil
}
