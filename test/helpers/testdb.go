package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing PasswordHash when it holds a raw
// password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "failed to hash test password")
		user.PasswordHash = string(hashed)
	}
	user.Email = strings.ToLower(user.Email)

	require.NoError(t, db.Create(user).Error, "failed to create test user %s", user.Email)
}

// CreateAndLoginUser creates a user directly in the database and logs it
// in through the API, returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got body: %s", bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}
