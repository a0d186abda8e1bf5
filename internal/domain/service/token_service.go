package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and validates local session tokens.
type TokenService interface {
	// GenerateToken creates a session token for email.
	GenerateToken(email string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature and expiry of a token.
	ValidateToken(tokenString string) (*Claims, error)
}
