package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobHandler serves the public catalog and the recruiter's job console.
type JobHandler struct {
	BaseHandler
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: NewBaseHandler(),
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/jobs", h.List)
	public.GET("/jobs/:id", h.Get)

	recruiter := authed.Group("", middleware.RequireRoles(models.UserRoleRecruiter))
	recruiter.POST("/jobs", h.Create)
	recruiter.PUT("/jobs/:id", h.Update)
	recruiter.DELETE("/jobs/:id", h.Delete)
	recruiter.PATCH("/jobs/:id/status", h.ChangeStatus)
	recruiter.GET("/jobs/recruiter/jobs", h.OwnerJobs)
	recruiter.GET("/jobs/recruiter/stats", h.Stats)
}

// List is the public, filtered, paginated catalog. Defaults to active
// jobs only.
func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.jobService.ListJobs(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := h.CheckIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "job": job})
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	id, ok := h.CheckIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(id, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	id, ok := h.CheckIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(id, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job deleted"})
}

func (h *JobHandler) ChangeStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	id, ok := h.CheckIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeJobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.ChangeStatus(id, userID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

// OwnerJobs lists the recruiter's own jobs with fresh application counts.
func (h *JobHandler) OwnerJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.JobQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.jobService.GetOwnerJobs(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Stats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.jobService.GetStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
