package apperrors

import (
	"jobboard_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

// GinErrorHandler converts errors into HTTP responses.
type GinErrorHandler struct {
	Debug bool
}

var defaultHandler = &GinErrorHandler{}

// SetDebug controls whether internal error details are included in 500
// responses. Off in production.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if !h.Debug {
			appErr.Message = "Internal server error"
			appErr.Details = nil
		} else {
			appErr.Details = err.Error()
		}
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "server error", "error", appErr.Error())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Success: false, Error: appErr})
}

// HandleError sends err through the default handler.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from err if there is one in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
