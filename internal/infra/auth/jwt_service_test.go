package auth

import (
	"testing"

	"testament/config"
	"testament/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig(""))

	require.Error(t, err)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	service, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	subject := uuid.New()
	roles := entity.Roles{entity.RoleAdmin}

	token, err := service.GenerateToken(subject, roles)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.True(t, claims.Roles.Contains(entity.RoleAdmin))
	assert.False(t, claims.Roles.Contains(entity.RoleApplicant))
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("issuer-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("other-secret"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), entity.Roles{entity.RoleApplicant})
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	service, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	claims, err := service.ValidateToken("not.a.token")

	require.Error(t, err)
	assert.Nil(t, claims)
}
