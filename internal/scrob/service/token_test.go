package service

import (
	"context"
	"testing"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &TokenService{Store: st}

	user := seedUser(t, st, "alice", false)
	other := seedUser(t, st, "bob", false)

	t.Run("issue returns the value once", func(t *testing.T) {
		tok, err := svc.Issue(ctx, user.ID, "phone")
		require.NoError(t, err)
		require.NotEmpty(t, tok.ID)
		require.NotEmpty(t, tok.Value)
		require.Equal(t, "phone", tok.Label)
		require.False(t, tok.Revoked())
	})

	t.Run("issued tokens are distinct", func(t *testing.T) {
		a, err := svc.Issue(ctx, user.ID, "")
		require.NoError(t, err)
		b, err := svc.Issue(ctx, user.ID, "")
		require.NoError(t, err)
		require.NotEqual(t, a.Value, b.Value)
		require.NotEqual(t, a.ID, b.ID)
	})

	t.Run("resolve maps value to owner and touches", func(t *testing.T) {
		tok, err := svc.Issue(ctx, user.ID, "laptop")
		require.NoError(t, err)

		got, resolved, err := svc.Resolve(ctx, tok.Value)
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
		require.Equal(t, tok.ID, resolved.ID)
		require.NotNil(t, resolved.LastUsedAt)
	})

	t.Run("resolve rejects unknown values", func(t *testing.T) {
		_, _, err := svc.Resolve(ctx, "no-such-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("resolve rejects empty values", func(t *testing.T) {
		_, _, err := svc.Resolve(ctx, "")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("revoked tokens stop resolving", func(t *testing.T) {
		tok, err := svc.Issue(ctx, user.ID, "old-phone")
		require.NoError(t, err)

		_, _, err = svc.Resolve(ctx, tok.Value)
		require.NoError(t, err)

		require.NoError(t, svc.Revoke(ctx, user.ID, tok.ID))

		_, _, err = svc.Resolve(ctx, tok.Value)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("revoke is idempotent", func(t *testing.T) {
		tok, err := svc.Issue(ctx, user.ID, "")
		require.NoError(t, err)

		require.NoError(t, svc.Revoke(ctx, user.ID, tok.ID))
		require.NoError(t, svc.Revoke(ctx, user.ID, tok.ID))
	})

	t.Run("revoking an unknown token is not found", func(t *testing.T) {
		err := svc.Revoke(ctx, user.ID, "01ZZZZZZZZZZZZZZZZZZZZZZZZ")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("revoking someone else's token is forbidden", func(t *testing.T) {
		tok, err := svc.Issue(ctx, user.ID, "")
		require.NoError(t, err)

		err = svc.Revoke(ctx, other.ID, tok.ID)
		require.ErrorIs(t, err, ErrForbidden)

		// Still usable afterwards.
		_, _, err = svc.Resolve(ctx, tok.Value)
		require.NoError(t, err)
	})

	t.Run("list returns revoked tokens too", func(t *testing.T) {
		owner := seedUser(t, st, "carol", false)

		active, err := svc.Issue(ctx, owner.ID, "active")
		require.NoError(t, err)
		revoked, err := svc.Issue(ctx, owner.ID, "revoked")
		require.NoError(t, err)
		require.NoError(t, svc.Revoke(ctx, owner.ID, revoked.ID))

		tokens, err := svc.List(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, tokens, 2)

		byID := map[string]domain.ApiToken{}
		for _, tok := range tokens {
			byID[tok.ID] = tok
		}
		require.False(t, byID[active.ID].Revoked())
		require.True(t, byID[revoked.ID].Revoked())
	})

	t.Run("label too long is rejected", func(t *testing.T) {
		long := make([]byte, maxLabelLength+1)
		for i := range long {
			long[i] = 'x'
		}

		_, err := svc.Issue(ctx, user.ID, string(long))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "label", verr.Field)
	})
}

func TestTokenServiceAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &TokenService{Store: st}

	user := seedUser(t, st, "alice", true)
	tok, err := svc.Issue(ctx, user.ID, "")
	require.NoError(t, err)

	t.Run("valid bearer header", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "Bearer "+tok.Value)
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
		require.Equal(t, "alice", got.Username)
		require.True(t, got.IsAdmin)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "")
		require.ErrorIs(t, err, ErrMalformedCredential)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "Basic "+tok.Value)
		require.ErrorIs(t, err, ErrMalformedCredential)
	})

	t.Run("lowercase scheme is rejected", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "bearer "+tok.Value)
		require.ErrorIs(t, err, ErrMalformedCredential)
	})

	t.Run("empty token after prefix", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "Bearer ")
		require.ErrorIs(t, err, ErrMalformedCredential)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "Bearer bogus")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenServiceLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)

	boot := &BootstrapService{Store: st}
	_, err := boot.CreateInitialUser(ctx, "", "alice", "Correct1Password")
	require.NoError(t, err)

	svc := &TokenService{
		Store:       st,
		Credentials: &CredentialService{Store: st},
	}

	t.Run("login issues a session token", func(t *testing.T) {
		u, tok, err := svc.Login(ctx, "alice", "Correct1Password")
		require.NoError(t, err)
		require.Equal(t, "alice", u.Username)
		require.Equal(t, domain.SessionLabel, tok.Label)
		require.NotEmpty(t, tok.Value)

		got, _, err := svc.Resolve(ctx, tok.Value)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("each login mints a fresh token", func(t *testing.T) {
		_, first, err := svc.Login(ctx, "alice", "Correct1Password")
		require.NoError(t, err)
		_, second, err := svc.Login(ctx, "alice", "Correct1Password")
		require.NoError(t, err)

		require.NotEqual(t, first.Value, second.Value)

		// The first token stays valid.
		_, _, err = svc.Resolve(ctx, first.Value)
		require.NoError(t, err)
	})

	t.Run("wrong password issues nothing", func(t *testing.T) {
		before, err := svc.List(ctx, mustUserID(t, ctx, svc, "alice"))
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "alice", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		after, err := svc.List(ctx, mustUserID(t, ctx, svc, "alice"))
		require.NoError(t, err)
		require.Len(t, after, len(before))
	})
}

func mustUserID(t *testing.T, ctx context.Context, svc *TokenService, username string) string {
	t.Helper()
	u, err := svc.Store.Users().GetUserByUsername(ctx, username)
	require.NoError(t, err)
	return u.ID
}
