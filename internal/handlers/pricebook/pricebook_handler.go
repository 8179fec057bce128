// internal/handlers/pricebook/pricebook_handler.go
package pricebook

import (
	"net/http"

	"fieldserve/internal/middleware"
	"fieldserve/internal/pkg/response"
	service "fieldserve/internal/service/pricebook"

	"github.com/gin-gonic/gin"
)

type PricebookHandler struct {
	pbService *service.PricebookService
}

func NewPricebookHandler(pbService *service.PricebookService) *PricebookHandler {
	return &PricebookHandler{pbService: pbService}
}

// ListGlobal returns the shared catalog that seeds each company's book.
func (h *PricebookHandler) ListGlobal(c *gin.Context) {
	result, err := h.pbService.ListGlobal(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "pricebook retrieved", result)
}

func (h *PricebookHandler) ListForCompany(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	result, err := h.pbService.ListForCompany(c.Request.Context(), companyID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "pricebook retrieved", result)
}
