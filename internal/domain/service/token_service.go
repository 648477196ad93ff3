package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for access tokens issued by the local identity provider.
// The user id travels in the registered subject claim.
type Claims struct {
	TokenVersion int `json:"ver"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the identity provider.
type TokenService interface {
	// GenerateAccessToken creates an access token for uid bound to the given token version.
	GenerateAccessToken(uid string, tokenVersion int) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration
}
