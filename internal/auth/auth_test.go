package auth

import (
	"testing"

	"jobboard_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 5
	config.AppConfig = cfg
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword("12345"))
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig()

	token, err := GenerateToken("507f1f77bcf86cd799439011", "recruiter")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "recruiter", claims.Role)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig()

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig()
	token, err := GenerateToken("507f1f77bcf86cd799439011", "jobseeker")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "a-different-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}
