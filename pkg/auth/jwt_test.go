package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateTokenAcceptsValidToken(t *testing.T) {
	validator, err := NewJWTValidator(JWTConfig{SecretKey: testSecret, Issuer: "playbook-backend"})
	require.NoError(t, err)

	token := signToken(t, jwt.MapClaims{
		"sub":   "user-1",
		"email": "dev@example.com",
		"iss":   "playbook-backend",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "dev@example.com", claims.Email)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	validator, err := NewJWTValidator(JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)

	token := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	validator, err := NewJWTValidator(JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)

	token := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "some-other-secret")

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRequiresSubject(t *testing.T) {
	validator, err := NewJWTValidator(JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)

	token := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	_, err = validator.ValidateToken(token)
	assert.ErrorContains(t, err, "subject")
}

func TestNewJWTValidatorRequiresSecret(t *testing.T) {
	_, err := NewJWTValidator(JWTConfig{})
	assert.Error(t, err)
}

func TestUserContextRoundTrip(t *testing.T) {
	claims := &Claims{UserID: "user-1", Roles: []string{"authenticated"}}
	ctx := WithUser(context.Background(), claims)

	got, err := GetUserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, claims, got)

	_, err = GetUserFromContext(context.Background())
	assert.Error(t, err)
}
