package store

import (
	"context"
	"errors"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable, and a transaction scope for multi-row writes that must
// be atomic (scrobble batches).
type Store interface {
	Users() Users
	ApiTokens() ApiTokens
	Scrobs() Scrobs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to get all-or-nothing batch writes.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during password verification. Exact,
	// case-sensitive match.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users with their scrobble counts, newest
	// first. Admin surface only.
	ListUsers(ctx context.Context) ([]domain.User, map[string]int64, error)

	// CountUserScrobs returns the scrobble count and last play timestamp
	// (nil if none) for one user.
	CountUserScrobs(ctx context.Context, userID string) (int64, *int64, error)

	// DeleteUser cascades to api_tokens and scrobs (per schema).
	DeleteUser(ctx context.Context, userID string) error

	// InstanceStats returns whole-instance totals. Admin surface only.
	InstanceStats(ctx context.Context) (domain.InstanceStats, error)

	// TopUsers returns up to limit accounts with at least one listen,
	// ordered by listen count DESC then username ASC.
	TopUsers(ctx context.Context, limit int) ([]domain.TopUser, error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type ApiTokens interface {
	// CreateToken stores a freshly issued token.
	CreateToken(ctx context.Context, t domain.ApiToken) error

	// GetTokenByID fetches a token regardless of state (for revocation
	// ownership checks).
	GetTokenByID(ctx context.Context, id string) (domain.ApiToken, error)

	// GetActiveTokenByValue returns the token by exact value where
	// revoked = 0, together with its owning user. Revoked or unknown
	// values are ErrNotFound, indistinguishably.
	GetActiveTokenByValue(ctx context.Context, value string) (domain.User, domain.ApiToken, error)

	// TouchToken sets last_used_at. Best-effort side effect of
	// resolution; callers must not fail on its error.
	TouchToken(ctx context.Context, id string, usedAt int64) error

	// RevokeToken flips revoked = 1. The flag is monotonic; there is no
	// un-revoke and tokens are never physically removed while their user
	// exists.
	RevokeToken(ctx context.Context, id string) error

	// ListUserTokens returns all of one user's tokens, newest first.
	ListUserTokens(ctx context.Context, userID string) ([]domain.ApiToken, error)
}

type Scrobs interface {
	// CreateScrob inserts one play event.
	CreateScrob(ctx context.Context, s domain.Scrob) error

	// RecentScrobs returns up to limit rows for one user ordered by
	// (timestamp DESC, id DESC).
	RecentScrobs(ctx context.Context, userID string, limit int) ([]domain.Scrob, error)

	// TopArtists groups by exact artist string within [from, to],
	// ordered by count DESC then artist ASC.
	TopArtists(ctx context.Context, userID string, from, to int64, limit int) ([]domain.TopArtist, error)

	// TopTracks groups by (artist, track) within [from, to], ordered by
	// count DESC then artist ASC, track ASC.
	TopTracks(ctx context.Context, userID string, from, to int64, limit int) ([]domain.TopTrack, error)
}
