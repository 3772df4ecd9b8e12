package handlers

import (
	"net/http"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, sessions, profile and password reset.
type AuthHandler struct {
	BaseHandler
	authService   *services.AuthService
	uploadService *services.UploadService
	cfg           *config.Config
}

func NewAuthHandler(authService *services.AuthService, uploadService *services.UploadService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   NewBaseHandler(),
		authService:   authService,
		uploadService: uploadService,
		cfg:           cfg,
	}
}

func (h *AuthHandler) RegisterRoutes(public, authed *gin.RouterGroup, limited gin.HandlerFunc) {
	public.POST("/auth/register", limited, h.Register)
	public.POST("/auth/login", limited, h.Login)
	public.POST("/auth/logout", h.Logout)
	public.POST("/auth/refresh", h.Refresh)
	public.POST("/auth/password-reset-request", limited, h.PasswordResetRequest)
	public.POST("/auth/password-reset", h.PasswordReset)

	authed.GET("/auth/profile", h.GetProfile)
	authed.PATCH("/auth/profile", h.UpdateProfile)
}

// Register creates an account from a JSON body or a multipart form with
// optional profileImage/resume files.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	var profileImageURL, resumeURL string

	if isMultipart(c) {
		if !h.BindAndValidate_Form(c, &req) {
			return
		}
		var ok bool
		if profileImageURL, resumeURL, ok = h.storeProfileFiles(c); !ok {
			return
		}
	} else {
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
	}

	resp, err := h.authService.Register(&req, profileImageURL, resumeURL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setTokenCookie(c, resp.AccessToken)
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setTokenCookie(c, resp.AccessToken)
	c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented refresh token and clears the cookie. The
// body is optional.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.clearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// Refresh trades a valid refresh token for a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setTokenCookie(c, resp.AccessToken)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// UpdateProfile patches profile fields from a JSON body or a multipart
// form with optional new files.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	var profileImageURL, resumeURL string

	if isMultipart(c) {
		if !h.BindAndValidate_Form(c, &req) {
			return
		}
		if profileImageURL, resumeURL, ok = h.storeProfileFiles(c); !ok {
			return
		}
	} else {
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
	}

	user, err := h.authService.UpdateProfile(userID, &req, profileImageURL, resumeURL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// PasswordResetRequest always answers 200; it never reveals whether the
// email is registered.
func (h *AuthHandler) PasswordResetRequest(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "If the account exists, a reset email has been sent"})
}

func (h *AuthHandler) PasswordReset(c *gin.Context) {
	var req dto.PasswordResetConfirm
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.Password); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password has been reset"})
}

// storeProfileFiles stores the optional profileImage and resume parts of
// a multipart request. Absent parts yield empty URLs.
func (h *AuthHandler) storeProfileFiles(c *gin.Context) (profileImageURL, resumeURL string, ok bool) {
	if fh, err := c.FormFile("profileImage"); err == nil {
		url, err := h.uploadService.StoreProfileImage(c.Request.Context(), fh)
		if err != nil {
			h.HandleServiceError(c, err)
			return "", "", false
		}
		profileImageURL = url
	}

	if fh, err := c.FormFile("resume"); err == nil {
		url, err := h.uploadService.StoreResume(c.Request.Context(), fh)
		if err != nil {
			h.HandleServiceError(c, err)
			return "", "", false
		}
		resumeURL = url
	}

	return profileImageURL, resumeURL, true
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	maxAge := h.cfg.JWT.TTL * 60
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", false, true)
}

func (h *AuthHandler) clearTokenCookie(c *gin.Context) {
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", false, true)
}
