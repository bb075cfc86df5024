package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.Generate(42, "dana@glowmart.dev", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AdminID)
	assert.Equal(t, "dana@glowmart.dev", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "catalog-service", claims.Issuer)
}

func TestJWTManager_Validate_WrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("different-secret", time.Hour)

	token, err := manager.Generate(1, "dana@glowmart.dev", "admin")
	require.NoError(t, err)

	claims, err := other.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTManager_Validate_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Generate(1, "dana@glowmart.dev", "admin")
	require.NoError(t, err)

	claims, err := manager.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTManager_Validate_Garbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	claims, err := manager.Validate("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
