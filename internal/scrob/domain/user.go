package domain

type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt encoded
	IsAdmin      bool
	CreatedAt    int64 // unix seconds
}

// AuthUser is the authenticated principal produced by token resolution.
// It is the only identity handlers may act on; identity is never
// re-derived from request bodies.
type AuthUser struct {
	ID       string
	Username string
	IsAdmin  bool
}

// InstanceStats are whole-instance totals for the admin overview.
type InstanceStats struct {
	TotalUsers   int64
	TotalScrobs  int64
	TotalArtists int64
	TotalTracks  int64
}

// TopUser is one row of the instance activity leaderboard. Accounts
// without listens do not appear.
type TopUser struct {
	Username string
	Count    int64
}
