package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 5,
		Issuer:     "ambuconnect-test",
	}

	token, expiresAt, err := GenerateToken("driver@example.com", "driver", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "driver@example.com", claims["user_id"])
	assert.Equal(t, "driver", claims["role"])
	assert.Equal(t, "ambuconnect-test", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "right-secret", Expiration: 5}

	token, _, err := GenerateToken("customer@example.com", "customer", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "wrong-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
}
