package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService()

	t.Run("issues the token for the exact credential pair", func(t *testing.T) {
		token, err := svc.Login(ctx, "admin", "secret")
		require.NoError(t, err)
		assert.Equal(t, "demo_token_12345", token)
	})

	t.Run("rejects every other pair", func(t *testing.T) {
		for _, pair := range [][2]string{
			{"admin", "wrong"},
			{"wrong", "secret"},
			{"Admin", "secret"},
			{"admin", "Secret"},
			{"admin ", "secret"},
			{"", ""},
		} {
			_, err := svc.Login(ctx, pair[0], pair[1])
			assert.True(t, errors.Is(err, ErrInvalidCredentials), "pair %v", pair)
		}
	})
}

func TestAuthServiceVerify(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService()

	token, err := svc.Login(ctx, "admin", "secret")
	require.NoError(t, err)

	assert.NoError(t, svc.Verify(ctx, token))

	for _, bad := range []string{"", "wrong", "demo_token_123456", "DEMO_TOKEN_12345"} {
		err := svc.Verify(ctx, bad)
		assert.True(t, errors.Is(err, ErrInvalidToken), "token %q", bad)
	}
}
