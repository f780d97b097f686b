package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the session tokens that identify the
// authenticated shopper on every cart, address and order call.
type TokenService interface {
	// GenerateTokens creates an access token and refresh token for a shopper.
	GenerateTokens(shopperID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against a secret and returns the
	// parsed token.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
