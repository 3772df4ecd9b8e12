package handlers

import (
	"errors"
	"strings"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler bundles request binding, validation and error responses
// shared by every handler.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() BaseHandler {
	return BaseHandler{validator: validator.New()}
}

// BindAndValidate_JSON binds a JSON body into req and validates it. On
// failure the 400 response has already been written.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, req)
}

// BindAndValidate_Query binds query parameters into req and validates it.
func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return h.validate(c, req)
}

// BindAndValidate_Form binds multipart/urlencoded form fields into req
// and validates it. File parts are read separately by the caller.
func (h *BaseHandler) BindAndValidate_Form(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data"))
		return false
	}
	return h.validate(c, req)
}

func (h *BaseHandler) validate(c *gin.Context, req interface{}) bool {
	if err := h.validator.Validate(req); err != nil {
		h.HandleServiceError(c, err)
		return false
	}
	return true
}

// HandleServiceError maps service-layer errors onto HTTP responses.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		apperrors.HandleError(c, apperrors.ValidationError(validationErr.Errors))
		return
	}
	apperrors.HandleError(c, err)
}

// CheckIDParam returns the named path parameter if it is a well-formed
// 24-hex identifier, writing the 400 response otherwise.
func (h *BaseHandler) CheckIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !models.IsValidID(id) {
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string{
			name: "Must be a 24-character hexadecimal identifier",
		}))
		return "", false
	}
	return id, true
}

// GetAndAuthorizeUserID returns the authenticated user ID, writing a 401
// if the middleware did not set one.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return userID, true
}

// isMultipart reports whether the request carries a multipart form.
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}
