// internal/handlers/dashboard/dashboard_handler.go
package dashboard

import (
	"net/http"

	"fieldserve/internal/middleware"
	"fieldserve/internal/pkg/response"
	service "fieldserve/internal/service/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashService *service.DashboardService
}

func NewDashboardHandler(dashService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashService: dashService}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	result, err := h.dashService.Stats(c.Request.Context(), companyID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "dashboard stats retrieved", result)
}
