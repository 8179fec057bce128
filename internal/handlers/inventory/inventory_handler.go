// internal/handlers/inventory/inventory_handler.go
package inventory

import (
	"net/http"
	"strconv"

	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/pkg/response"
	service "fieldserve/internal/service/inventory"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	invService *service.InventoryService
}

func NewInventoryHandler(invService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{invService: invService}
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req inventory.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.invService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "inventory item created", result)
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid item id")
		return
	}

	result, err := h.invService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "inventory item retrieved", result)
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	result, err := h.invService.ListItems(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "inventory retrieved", result)
}

func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	result, err := h.invService.ListLowStock(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "low stock items retrieved", result)
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid item id")
		return
	}

	var req inventory.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.invService.UpdateItem(c.Request.Context(), id, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "inventory item updated", result)
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.invService.DeleteItem(c.Request.Context(), id); err != nil {
		response.DomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
