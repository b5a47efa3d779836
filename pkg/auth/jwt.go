// Package auth provides JWT validation and the authenticated user
// context shared by HTTP middleware and handlers.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the authenticated user context extracted from a token.
type Claims struct {
	UserID string
	Email  string
	Roles  []string
}

// JWTConfig configures token validation.
type JWTConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
}

// JWTValidator validates HS256 bearer tokens.
type JWTValidator struct {
	config JWTConfig
}

// NewJWTValidator creates a validator for the given configuration.
func NewJWTValidator(config JWTConfig) (*JWTValidator, error) {
	if config.SecretKey == "" {
		return nil, fmt.Errorf("jwt secret key is required")
	}
	return &JWTValidator{config: config}, nil
}

// ValidateToken parses and verifies a bearer token, returning the
// user claims on success.
func (v *JWTValidator) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if v.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.config.Issuer))
	}
	if v.config.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.config.Audience))
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(v.config.SecretKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}

	claims := &Claims{
		UserID: sub,
		Roles:  []string{"authenticated"},
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	return claims, nil
}

// contextKey avoids collisions with other packages' context values.
type contextKey string

const userContextKey contextKey = "auth.user"

// WithUser stores the authenticated user claims on the context.
func WithUser(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}

// GetUserFromContext returns the authenticated user claims, or an
// error if the request was not authenticated.
func GetUserFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(userContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("no authenticated user in context")
	}
	return claims, nil
}
