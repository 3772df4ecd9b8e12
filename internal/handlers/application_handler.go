package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler serves both sides of the application workflow: the
// job seeker's submissions and the recruiter's review queue.
type ApplicationHandler struct {
	BaseHandler
	appService    *services.ApplicationService
	uploadService *services.UploadService
}

func NewApplicationHandler(appService *services.ApplicationService, uploadService *services.UploadService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:   NewBaseHandler(),
		appService:    appService,
		uploadService: uploadService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(authed *gin.RouterGroup) {
	seeker := authed.Group("", middleware.RequireRoles(models.UserRoleJobSeeker))
	seeker.POST("/applications", h.Submit)
	seeker.GET("/applications/user", h.ListForUser)
	seeker.DELETE("/applications/:id", h.Withdraw)

	recruiter := authed.Group("", middleware.RequireRoles(models.UserRoleRecruiter))
	recruiter.GET("/applications/job/:jobId", h.ListForJob)
	recruiter.GET("/applications/recruiter", h.ListForRecruiter)
	recruiter.PATCH("/applications/:id/status", h.UpdateStatus)

	// Visible to either party; the service decides.
	authed.GET("/applications/:id", h.Get)
}

// Submit accepts a JSON body or a multipart form with an optional resume
// file. Without one the applicant's profile resume is used.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	var resumeURL string

	if isMultipart(c) {
		if !h.BindAndValidate_Form(c, &req) {
			return
		}
		if fh, err := c.FormFile("resume"); err == nil {
			url, err := h.uploadService.StoreResume(c.Request.Context(), fh)
			if err != nil {
				h.HandleServiceError(c, err)
				return
			}
			resumeURL = url
		}
	} else {
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
	}

	app, err := h.appService.Submit(userID, &req, resumeURL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "application": app})
}

// ListForUser lists the authenticated job seeker's own applications.
func (h *ApplicationHandler) ListForUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ApplicationQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.appService.ListForApplicant(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListForJob lists a single job's applications for its owner.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.CheckIDParam(c, "jobId")
	if !ok {
		return
	}

	var query dto.ApplicationQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.appService.ListForJob(jobID, userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListForRecruiter lists applications across every job the recruiter owns.
func (h *ApplicationHandler) ListForRecruiter(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ApplicationQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.appService.ListForRecruiter(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	id, ok := h.CheckIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.appService.GetByID(id, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	id, ok := h.CheckIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.appService.UpdateStatus(id, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}

// Withdraw deletes the caller's own pending application.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	id, ok := h.CheckIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.appService.Withdraw(id, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application withdrawn"})
}
