package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	email := uniqueEmail("seeker")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Test Seeker",
		"email":    email,
		"password": "password123",
		"role":     "jobseeker",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "register failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"access_token"`)
	assert.Contains(t, bodyStr, `"role":"jobseeker"`)
	assert.NotContains(t, bodyStr, "password", "password material must never appear in responses")

	// A second registration with the same email is rejected.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Imposter",
		"email":    email,
		"password": "password456",
		"role":     "jobseeker",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, "duplicate email should conflict: %s", bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"access_token"`)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "wrong password should 401: %s", bodyStr)
}

func TestAuth_RegisterValidation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	// Admin accounts cannot self-register.
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Wannabe Admin",
		"email":    uniqueEmail("admin"),
		"password": "password123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "admin self-register should fail: %s", bodyStr)

	// Missing fields come back as a field map.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, `"name"`)
	assert.Contains(t, bodyStr, `"password"`)
}

func TestAuth_ProfileFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	email := uniqueEmail("profile")
	token, _ := helpers.CreateAndLoginUser(t, ts, "Profile User", email, "password123", models.UserRoleJobSeeker)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "profile fetch failed: %s", bodyStr)
	assert.Contains(t, bodyStr, email)

	res, bodyStr = ts.SendRequest(t, http.MethodPatch, "/auth/profile", token, map[string]interface{}{
		"name": "Renamed User",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "profile update failed: %s", bodyStr)
	assert.Contains(t, bodyStr, "Renamed User")

	// No credential at all.
	res, _ = ts.SendRequest(t, http.MethodGet, "/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Garbage credential.
	res, _ = ts.SendRequest(t, http.MethodGet, "/auth/profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAuth_Logout(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	email := uniqueEmail("logout")
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Logout User",
		"email":    email,
		"password": "password123",
		"role":     "jobseeker",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "register failed: %s", bodyStr)

	var session struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &session))
	require.NotEmpty(t, session.RefreshToken)

	// The refresh token is good for a new access token while it lives.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/auth/refresh", "", map[string]interface{}{
		"refresh_token": session.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "refresh failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"access_token"`)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/auth/logout", "", map[string]interface{}{
		"refresh_token": session.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "logout failed: %s", bodyStr)

	// And dead afterwards.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/refresh", "", map[string]interface{}{
		"refresh_token": session.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var count int64
	ts.DB.Model(&models.RefreshToken{}).Where("token = ?", session.RefreshToken).Count(&count)
	assert.EqualValues(t, 0, count, "refresh token should be revoked")
}

func TestAuth_PasswordReset(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	email := uniqueEmail("reset")
	helpers.CreateAndLoginUser(t, ts, "Reset User", email, "oldpassword", models.UserRoleJobSeeker)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/password-reset-request", "", map[string]interface{}{
		"email": email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "reset request failed: %s", bodyStr)

	// An unknown email answers identically; no account enumeration.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/password-reset-request", "", map[string]interface{}{
		"email": "nobody@test.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", email).First(&user).Error)
	require.NotEmpty(t, user.ResetToken, "reset token should be persisted")

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/auth/password-reset", "", map[string]interface{}{
		"token":    user.ResetToken,
		"password": "newpassword",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "password reset failed: %s", bodyStr)

	// Old password no longer works, new one does, sessions were revoked.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "oldpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "newpassword",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// A spent token cannot be replayed.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/password-reset", "", map[string]interface{}{
		"token":    user.ResetToken,
		"password": "anotherpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
