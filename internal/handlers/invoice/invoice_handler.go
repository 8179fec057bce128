// internal/handlers/invoice/invoice_handler.go
package invoice

import (
	"net/http"
	"strconv"

	"fieldserve/internal/domain/invoice"
	"fieldserve/internal/middleware"
	"fieldserve/internal/pkg/response"
	service "fieldserve/internal/service/invoice"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	var req invoice.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.invoiceService.CreateInvoice(c.Request.Context(), companyID, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "invoice created", result)
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	result, err := h.invoiceService.GetInvoice(c.Request.Context(), companyID, id)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "invoice retrieved", result)
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), companyID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "invoices retrieved", result)
}

func (h *InvoiceHandler) ListInvoicesByCustomer(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	customerID, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	result, err := h.invoiceService.ListInvoicesByCustomer(c.Request.Context(), companyID, customerID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "invoices retrieved", result)
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	var req invoice.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.invoiceService.UpdateInvoice(c.Request.Context(), companyID, id, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "invoice updated", result)
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), companyID, id); err != nil {
		response.DomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
