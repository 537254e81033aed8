package service

import (
	"context"
	"crypto/subtle"
	"errors"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the presented token does not match the issued one.
	ErrInvalidToken = errors.New("invalid token")
)

// The demo identity system: one fixed credential pair and one fixed
// opaque token. No hashing, no expiry, no revocation.
const (
	demoUsername = "admin"
	demoPassword = "secret"
	demoToken    = "demo_token_12345"
)

// AuthService performs the demo credential and token checks.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Verify(ctx context.Context, token string) error
}

type authService struct{}

func NewAuthService() AuthService {
	return &authService{}
}

// Login returns the demo token iff the exact fixed credential pair is
// presented. The match is case-sensitive and inputs are not trimmed.
func (s *authService) Login(_ context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(demoUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(demoPassword)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return demoToken, nil
}

// Verify reports whether token exactly matches the token issued by Login.
func (s *authService) Verify(_ context.Context, token string) error {
	if subtle.ConstantTimeCompare([]byte(token), []byte(demoToken)) != 1 {
		return ErrInvalidToken
	}
	return nil
}
