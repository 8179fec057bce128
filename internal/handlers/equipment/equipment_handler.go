// internal/handlers/equipment/equipment_handler.go
package equipment

import (
	"net/http"
	"strconv"

	"fieldserve/internal/domain/equipment"
	"fieldserve/internal/middleware"
	"fieldserve/internal/pkg/response"
	service "fieldserve/internal/service/equipment"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	equipService *service.EquipmentService
}

func NewEquipmentHandler(equipService *service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipService: equipService}
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	var req equipment.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.equipService.CreateEquipment(c.Request.Context(), companyID, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "equipment created", result)
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid equipment id")
		return
	}

	result, err := h.equipService.GetEquipment(c.Request.Context(), companyID, id)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "equipment retrieved", result)
}

func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	result, err := h.equipService.ListEquipment(c.Request.Context(), companyID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "equipment retrieved", result)
}

func (h *EquipmentHandler) ListEquipmentByCustomer(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	customerID, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	result, err := h.equipService.ListEquipmentByCustomer(c.Request.Context(), companyID, customerID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "equipment retrieved", result)
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid equipment id")
		return
	}

	var req equipment.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.equipService.UpdateEquipment(c.Request.Context(), companyID, id, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "equipment updated", result)
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid equipment id")
		return
	}

	if err := h.equipService.DeleteEquipment(c.Request.Context(), companyID, id); err != nil {
		response.DomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
