// internal/handlers/customer/customer_handler.go
package customer

import (
	"net/http"
	"strconv"

	"fieldserve/internal/domain/customer"
	"fieldserve/internal/middleware"
	"fieldserve/internal/pkg/response"
	service "fieldserve/internal/service/customer"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomer stores a new customer under the caller's company. Any
// company id in the payload is ignored; the session decides the tenant.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	var req customer.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.customerService.CreateCustomer(c.Request.Context(), companyID, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "customer created", result)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	customerID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	result, err := h.customerService.GetCustomer(c.Request.Context(), companyID, customerID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "customer retrieved", result)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	result, err := h.customerService.ListCustomers(c.Request.Context(), companyID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "customers retrieved", result)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	customerID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	var req customer.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.customerService.UpdateCustomer(c.Request.Context(), companyID, customerID, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "customer updated", result)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	customerID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), companyID, customerID); err != nil {
		response.DomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
