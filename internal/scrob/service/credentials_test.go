package service

import (
	"context"
	"testing"
	"time"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/pkg/cryptox"
	"github.com/scrob-fm/scrob/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestCredentialServiceVerify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &CredentialService{Store: st}

	hash, err := cryptox.HashPassword("Correct1Password")
	require.NoError(t, err)

	user := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		PasswordHash: hash,
		CreatedAt:    time.Now().Unix(),
	}
	require.NoError(t, st.Users().CreateUser(ctx, user))

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Verify(ctx, "alice", "Correct1Password")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
		require.Equal(t, "alice", got.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Verify(ctx, "alice", "Wrong1Password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("near-miss password", func(t *testing.T) {
		_, err := svc.Verify(ctx, "alice", "Correct1Passwore")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := svc.Verify(ctx, "alice", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user fails identically", func(t *testing.T) {
		_, err := svc.Verify(ctx, "mallory", "Correct1Password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("username is case sensitive", func(t *testing.T) {
		_, err := svc.Verify(ctx, "Alice", "Correct1Password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
