package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/store"
	"github.com/scrob-fm/scrob/internal/scrob/store/drivers/sqlite"
	"github.com/scrob-fm/scrob/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway database with migrations applied.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "scrob.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedUser inserts a user directly. The password hash is a placeholder;
// tests that exercise password verification hash their own.
func seedUser(t *testing.T, st store.Store, username string, admin bool) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "unusable-hash",
		IsAdmin:      admin,
		CreatedAt:    time.Now().Unix(),
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func authUser(u domain.User) domain.AuthUser {
	return domain.AuthUser{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

// seedScrob inserts one play event directly.
func seedScrob(t *testing.T, st store.Store, userID, artist, track, album string, ts int64) domain.Scrob {
	t.Helper()

	s := domain.Scrob{
		ID:        idx.New().String(),
		UserID:    userID,
		Artist:    artist,
		Track:     track,
		Album:     album,
		Timestamp: ts,
		CreatedAt: time.Now().Unix(),
	}
	require.NoError(t, st.Scrobs().CreateScrob(context.Background(), s))
	return s
}
