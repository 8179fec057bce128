// internal/service/invoice/invoice.go
package invoice

import (
	"context"
	"strconv"
	"strings"
	"time"

	"fieldserve/internal/domain/invoice"
	xerrors "fieldserve/internal/pkg/errors"
	"fieldserve/internal/service/tenant"
	ws "fieldserve/internal/websocket"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EventPublisher pushes change events to the company's dashboard clients.
type EventPublisher interface {
	Publish(companyID int64, event ws.Event)
}

type InvoiceService struct {
	invoiceRepo invoice.Repository
	resolver    *tenant.Resolver
	events      EventPublisher
	logger      *zap.Logger
	now         func() time.Time
}

func NewInvoiceService(invoiceRepo invoice.Repository, resolver *tenant.Resolver, events EventPublisher, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		resolver:    resolver,
		events:      events,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateInvoice validates and persists an invoice with its items. Line
// totals and the invoice subtotal/total are always computed server side:
// total = quantity * unit_price per item, invoice total = subtotal + tax.
func (s *InvoiceService) CreateInvoice(ctx context.Context, companyID int64, req *invoice.CreateInvoiceRequest) (*invoice.Invoice, error) {
	v := xerrors.NewValidation()

	if req.CustomerID == 0 {
		v.Add("customer_id", "customer_id is required")
	}

	status := req.Status
	if status == "" {
		status = invoice.StatusDraft
	} else if !invoice.IsValidStatus(status) {
		v.Add("status", "status must be one of draft, sent, paid, overdue")
	}

	tax := decimal.Zero
	if req.Tax != "" {
		parsed, err := decimal.NewFromString(req.Tax)
		if err != nil || parsed.IsNegative() {
			v.Add("tax", "tax must be a non-negative decimal")
		} else {
			tax = parsed
		}
	}

	items := make([]invoice.Item, 0, len(req.Items))
	subtotal := decimal.Zero
	for i, itemReq := range req.Items {
		item, itemErrs := buildItem(i, itemReq)
		for field, msg := range itemErrs {
			v.Add(field, msg)
		}
		if item != nil {
			subtotal = subtotal.Add(item.Total)
			items = append(items, *item)
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.resolver.AssertCustomer(ctx, req.CustomerID, companyID); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(req.InvoiceNumber)
	if number == "" {
		number = "INV-" + ulid.Make().String()
	}

	inv := &invoice.Invoice{
		JobID:         req.JobID,
		CustomerID:    req.CustomerID,
		InvoiceNumber: number,
		Status:        status,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal.Add(tax),
		DueDate:       req.DueDate,
		Items:         items,
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		if !xerrors.Is(err, xerrors.ErrConflict) {
			s.logger.Error("failed to create invoice", zap.Error(err))
		}
		return nil, err
	}

	s.publish(companyID, "created", inv.ID)
	return inv, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, companyID, invoiceID int64) (*invoice.Invoice, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.AssertCustomer(ctx, inv.CustomerID, companyID); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, companyID int64) ([]invoice.Invoice, error) {
	return s.invoiceRepo.ListByCompany(ctx, companyID)
}

func (s *InvoiceService) ListInvoicesByCustomer(ctx context.Context, companyID, customerID int64) ([]invoice.Invoice, error) {
	if _, err := s.resolver.AssertCustomer(ctx, customerID, companyID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListByCustomer(ctx, customerID)
}

// UpdateInvoice applies a partial payload. Moving into paid without an
// explicit paid date stamps the current time, once.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, companyID, invoiceID int64, req *invoice.UpdateInvoiceRequest) (*invoice.Invoice, error) {
	inv, err := s.GetInvoice(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !invoice.IsValidStatus(*req.Status) {
			v := xerrors.NewValidation()
			v.Add("status", "status must be one of draft, sent, paid, overdue")
			return nil, v.Err()
		}
		if *req.Status == invoice.StatusPaid && inv.Status != invoice.StatusPaid && inv.PaidDate == nil && req.PaidDate == nil {
			t := s.now()
			inv.PaidDate = &t
		}
		inv.Status = *req.Status
	}
	if req.DueDate != nil {
		inv.DueDate = req.DueDate
	}
	if req.PaidDate != nil {
		inv.PaidDate = req.PaidDate
	}

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.publish(companyID, "updated", inv.ID)
	return inv, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, companyID, invoiceID int64) error {
	if _, err := s.GetInvoice(ctx, companyID, invoiceID); err != nil {
		return err
	}
	found, err := s.invoiceRepo.Delete(ctx, invoiceID)
	if err != nil {
		return err
	}
	if !found {
		return xerrors.ErrNotFound
	}
	s.publish(companyID, "deleted", invoiceID)
	return nil
}

func buildItem(idx int, req invoice.CreateItemRequest) (*invoice.Item, map[string]string) {
	errs := map[string]string{}
	prefix := "items[" + strconv.Itoa(idx) + "]."

	if strings.TrimSpace(req.Description) == "" {
		errs[prefix+"description"] = "description is required"
	}

	qty, err := decimal.NewFromString(req.Quantity)
	if err != nil || qty.IsNegative() {
		errs[prefix+"quantity"] = "quantity must be a non-negative decimal"
	}

	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil || price.IsNegative() {
		errs[prefix+"unit_price"] = "unit_price must be a non-negative decimal"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &invoice.Item{
		Description: strings.TrimSpace(req.Description),
		Quantity:    qty,
		UnitPrice:   price,
		Total:       qty.Mul(price),
	}, nil
}

func (s *InvoiceService) publish(companyID int64, eventType string, id int64) {
	if s.events == nil {
		return
	}
	s.events.Publish(companyID, ws.Event{Type: eventType, Resource: "invoice", ID: id})
}
