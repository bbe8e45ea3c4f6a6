package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBootstrapService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates the first user as admin", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st}

		u, err := svc.CreateInitialUser(ctx, "", "admin", "Admin123Pass")
		require.NoError(t, err)
		require.True(t, u.IsAdmin)
		require.Equal(t, "admin", u.Username)
		require.NotEmpty(t, u.ID)

		stored, err := st.Users().GetUserByUsername(ctx, "admin")
		require.NoError(t, err)
		require.True(t, stored.IsAdmin)
		require.NotEqual(t, "Admin123Pass", stored.PasswordHash)
	})

	t.Run("closes permanently after the first user", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st}

		_, err := svc.CreateInitialUser(ctx, "", "admin", "Admin123Pass")
		require.NoError(t, err)

		_, err = svc.CreateInitialUser(ctx, "", "second", "Second123Pass")
		require.ErrorIs(t, err, ErrAlreadyBootstrapped)
	})

	t.Run("requires the configured token", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Token: "setup-secret"}

		_, err := svc.CreateInitialUser(ctx, "", "admin", "Admin123Pass")
		require.ErrorIs(t, err, ErrForbidden)

		_, err = svc.CreateInitialUser(ctx, "wrong", "admin", "Admin123Pass")
		require.ErrorIs(t, err, ErrForbidden)

		_, err = svc.CreateInitialUser(ctx, "setup-secret", "admin", "Admin123Pass")
		require.NoError(t, err)
	})

	t.Run("rejects invalid usernames", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st}

		for _, name := range []string{"ab", "this-has-dashes", "way_too_long_username_here", "sp ace"} {
			_, err := svc.CreateInitialUser(ctx, "", name, "Admin123Pass")
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "username %q", name)
			require.Equal(t, "username", verr.Field)
		}
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st}

		for _, pw := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
			_, err := svc.CreateInitialUser(ctx, "", "admin", pw)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "password %q", pw)
			require.Equal(t, "password", verr.Field)
		}
	})
}
