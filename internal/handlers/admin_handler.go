package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the minimal admin panel.
type AdminHandler struct {
	BaseHandler
	adminService *services.AdminService
	jobService   *services.JobService
}

func NewAdminHandler(adminService *services.AdminService, jobService *services.JobService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  NewBaseHandler(),
		adminService: adminService,
		jobService:   jobService,
	}
}

func (h *AdminHandler) RegisterRoutes(authed *gin.RouterGroup) {
	admin := authed.Group("/admin", middleware.RequireRoles(models.UserRoleAdmin))
	admin.GET("/users", h.ListUsers)
	admin.GET("/recruiters", h.ListRecruiters)
	admin.DELETE("/users/:userId", h.DeleteUser)
	admin.POST("/jobs/resync-counts", h.ResyncCounts)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.UserQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.adminService.ListUsers(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListRecruiters(c *gin.Context) {
	var query dto.UserQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.adminService.ListRecruiters(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	targetID, ok := h.CheckIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(targetID, adminID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}

// ResyncCounts recomputes every job's cached application counter.
func (h *AdminHandler) ResyncCounts(c *gin.Context) {
	fixed, err := h.jobService.ResyncApplicationCounts()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "resynced": fixed})
}
