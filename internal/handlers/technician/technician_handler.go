// internal/handlers/technician/technician_handler.go
package technician

import (
	"net/http"
	"strconv"

	"fieldserve/internal/domain/technician"
	"fieldserve/internal/middleware"
	"fieldserve/internal/pkg/response"
	service "fieldserve/internal/service/technician"

	"github.com/gin-gonic/gin"
)

type TechnicianHandler struct {
	techService *service.TechnicianService
}

func NewTechnicianHandler(techService *service.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{techService: techService}
}

func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	var req technician.CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.techService.CreateTechnician(c.Request.Context(), companyID, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "technician created", result)
}

func (h *TechnicianHandler) GetTechnician(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid technician id")
		return
	}

	result, err := h.techService.GetTechnician(c.Request.Context(), companyID, id)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "technician retrieved", result)
}

func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	result, err := h.techService.ListTechnicians(c.Request.Context(), companyID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "technicians retrieved", result)
}

func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid technician id")
		return
	}

	var req technician.UpdateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.techService.UpdateTechnician(c.Request.Context(), companyID, id, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "technician updated", result)
}

func (h *TechnicianHandler) DeleteTechnician(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid technician id")
		return
	}

	if err := h.techService.DeleteTechnician(c.Request.Context(), companyID, id); err != nil {
		response.DomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
