// internal/handlers/job/job_handler.go
package job

import (
	"net/http"
	"strconv"

	"fieldserve/internal/domain/job"
	"fieldserve/internal/middleware"
	"fieldserve/internal/pkg/response"
	service "fieldserve/internal/service/job"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	var req job.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.jobService.CreateJob(c.Request.Context(), companyID, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "job created", result)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid job id")
		return
	}

	result, err := h.jobService.GetJob(c.Request.Context(), companyID, id)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job retrieved", result)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	result, err := h.jobService.ListJobs(c.Request.Context(), companyID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "jobs retrieved", result)
}

func (h *JobHandler) ListJobsToday(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	result, err := h.jobService.ListJobsToday(c.Request.Context(), companyID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "jobs retrieved", result)
}

func (h *JobHandler) ListJobsByCustomer(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	customerID, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	result, err := h.jobService.ListJobsByCustomer(c.Request.Context(), companyID, customerID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "jobs retrieved", result)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid job id")
		return
	}

	var req job.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.jobService.UpdateJob(c.Request.Context(), companyID, id, &req)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job updated", result)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid job id")
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), companyID, id); err != nil {
		response.DomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
