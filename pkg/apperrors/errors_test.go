package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	assert.ErrorIs(t, appErr, cause)

	var target *AppError
	require.True(t, errors.As(appErr, &target))
	assert.Equal(t, http.StatusInternalServerError, target.HTTPCode)
}

func TestAppError_MarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("secret detail"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret detail")
	assert.NotContains(t, string(raw), "HTTPCode")
	assert.Contains(t, string(raw), `"message":"Internal server error"`)
}

func TestDomainErrorStatusMapping(t *testing.T) {
	// Conflicts answer 400 on this API, not 409.
	assert.Equal(t, http.StatusBadRequest, ErrAlreadyApplied.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrApplicationNotPending.HTTPCode)

	assert.Equal(t, http.StatusNotFound, ErrJobNotFound.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrJobNotActive.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrInsufficientPermissions.HTTPCode)
	assert.Equal(t, http.StatusTooManyRequests, ErrTooManyRequests.HTTPCode)
	assert.Equal(t, http.StatusRequestEntityTooLarge, ErrFileTooLarge.HTTPCode)
	assert.Equal(t, http.StatusUnsupportedMediaType, ErrInvalidFileType.HTTPCode)
}

func TestValidationErrorDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "This field is required"})
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"email":"This field is required"`)
}
