package service

import (
	"context"
	"testing"
	"time"

	"github.com/scrob-fm/scrob/internal/scrob/store"
	"github.com/stretchr/testify/require"
)

func TestAdminServiceUsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &AdminService{Store: st}

	admin := seedUser(t, st, "admin", true)
	alice := seedUser(t, st, "alice", false)
	bob := seedUser(t, st, "bob", false)

	base := time.Now().Unix() - 1000
	seedScrob(t, st, alice.ID, "A", "X", "", base+1)
	seedScrob(t, st, alice.ID, "A", "Y", "", base+2)
	seedScrob(t, st, bob.ID, "B", "Z", "", base+3)

	t.Run("list includes counts", func(t *testing.T) {
		summaries, err := svc.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 3)

		counts := map[string]int64{}
		for _, s := range summaries {
			counts[s.User.Username] = s.ScrobCount
		}
		require.EqualValues(t, 0, counts["admin"])
		require.EqualValues(t, 2, counts["alice"])
		require.EqualValues(t, 1, counts["bob"])
	})

	t.Run("detail includes last play", func(t *testing.T) {
		detail, err := svc.GetUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "alice", detail.User.Username)
		require.EqualValues(t, 2, detail.ScrobCount)
		require.NotNil(t, detail.LastScrob)
		require.Equal(t, base+2, *detail.LastScrob)
	})

	t.Run("detail without plays has no last play", func(t *testing.T) {
		detail, err := svc.GetUser(ctx, admin.ID)
		require.NoError(t, err)
		require.EqualValues(t, 0, detail.ScrobCount)
		require.Nil(t, detail.LastScrob)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		_, err := svc.GetUser(ctx, "01ZZZZZZZZZZZZZZZZZZZZZZZZ")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAdminServiceStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &AdminService{Store: st}

	t.Run("empty instance has zero totals", func(t *testing.T) {
		overview, err := svc.Stats(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 0, overview.Stats.TotalUsers)
		require.EqualValues(t, 0, overview.Stats.TotalScrobs)
		require.Empty(t, overview.TopUsers)
	})

	seedUser(t, st, "admin", true)
	alice := seedUser(t, st, "alice", false)
	bob := seedUser(t, st, "bob", false)

	base := time.Now().Unix() - 1000
	seedScrob(t, st, alice.ID, "A", "X", "", base+1)
	seedScrob(t, st, alice.ID, "A", "Y", "", base+2)
	seedScrob(t, st, alice.ID, "B", "X", "", base+3)
	seedScrob(t, st, bob.ID, "A", "X", "", base+4)

	t.Run("totals count distinct artists and tracks", func(t *testing.T) {
		overview, err := svc.Stats(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 3, overview.Stats.TotalUsers)
		require.EqualValues(t, 4, overview.Stats.TotalScrobs)
		// Artists A and B.
		require.EqualValues(t, 2, overview.Stats.TotalArtists)
		// (A,X), (A,Y), (B,X); B's X is distinct from A's X.
		require.EqualValues(t, 3, overview.Stats.TotalTracks)
	})

	t.Run("leaderboard orders by listens and skips idle accounts", func(t *testing.T) {
		overview, err := svc.Stats(ctx)
		require.NoError(t, err)
		require.Len(t, overview.TopUsers, 2)
		require.Equal(t, "alice", overview.TopUsers[0].Username)
		require.EqualValues(t, 3, overview.TopUsers[0].Count)
		require.Equal(t, "bob", overview.TopUsers[1].Username)
		require.EqualValues(t, 1, overview.TopUsers[1].Count)
	})
}

func TestAdminServiceDeleteUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &AdminService{Store: st}
	tokens := &TokenService{Store: st}

	admin := seedUser(t, st, "admin", true)
	victim := seedUser(t, st, "victim", false)

	tok, err := tokens.Issue(ctx, victim.ID, "")
	require.NoError(t, err)
	seedScrob(t, st, victim.ID, "A", "X", "", time.Now().Unix()-100)

	t.Run("cannot delete own account", func(t *testing.T) {
		err := svc.DeleteUser(ctx, authUser(admin), admin.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("delete cascades to tokens and scrobs", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(ctx, authUser(admin), victim.ID))

		_, err := st.Users().GetUserByID(ctx, victim.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		// Token no longer resolves.
		_, _, err = tokens.Resolve(ctx, tok.Value)
		require.ErrorIs(t, err, ErrInvalidToken)

		// Listens are gone.
		recent, err := st.Scrobs().RecentScrobs(ctx, victim.ID, 10)
		require.NoError(t, err)
		require.Empty(t, recent)
	})

	t.Run("deleting twice is not found", func(t *testing.T) {
		err := svc.DeleteUser(ctx, authUser(admin), victim.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
