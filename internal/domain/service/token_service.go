package service

import (
	"errors"
	"time"
)

var (
	// ErrTokenExpired is returned when the embedded expiry is in the past.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned when a token cannot be parsed or its signature does not check out.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the identity carried by an access token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after the configured TTL.
	Issue(subject string) (string, error)

	// Verify returns the embedded claims, ErrTokenExpired or ErrTokenInvalid.
	Verify(token string) (*Claims, error)
}
