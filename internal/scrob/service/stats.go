package service

import (
	"context"
	"math"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/store"
)

// Result-size defaults and bounds for history and ranking queries.
// Out-of-range requests are clamped silently rather than rejected.
const (
	DefaultRecentLimit = 20
	DefaultTopLimit    = 10
	MaxQueryLimit      = 100
)

// StatsService serves per-user listening history and rankings. Every
// query is scoped to a single user; no cross-user aggregation exists.
type StatsService struct {
	Store store.Store
}

// ClampLimit folds a requested result size into [1, MaxQueryLimit].
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}

// Recent returns the user's listens ordered by play timestamp
// descending, most recently ingested first among equal timestamps.
func (s *StatsService) Recent(
	ctx context.Context,
	user domain.AuthUser,
	limit int,
) ([]domain.Scrob, error) {
	scrobs, err := s.Store.Scrobs().RecentScrobs(ctx, user.ID, ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	if scrobs == nil {
		scrobs = []domain.Scrob{}
	}
	return scrobs, nil
}

// TopArtists ranks the user's artists by play count over the optional
// [from, to] play-timestamp range. Ties break alphabetically.
func (s *StatsService) TopArtists(
	ctx context.Context,
	user domain.AuthUser,
	from, to *int64,
	limit int,
) ([]domain.TopArtist, error) {
	lo, hi := normalizeRange(from, to)
	artists, err := s.Store.Scrobs().TopArtists(ctx, user.ID, lo, hi, ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	if artists == nil {
		artists = []domain.TopArtist{}
	}
	return artists, nil
}

// TopTracks ranks the user's tracks by play count over the optional
// [from, to] play-timestamp range. A track is an artist/track pair; the
// album never participates in grouping. Ties break alphabetically by
// artist, then track.
func (s *StatsService) TopTracks(
	ctx context.Context,
	user domain.AuthUser,
	from, to *int64,
	limit int,
) ([]domain.TopTrack, error) {
	lo, hi := normalizeRange(from, to)
	tracks, err := s.Store.Scrobs().TopTracks(ctx, user.ID, lo, hi, ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = []domain.TopTrack{}
	}
	return tracks, nil
}

// normalizeRange widens absent bounds to the full timestamp range. An
// inverted range stays inverted and simply matches nothing.
func normalizeRange(from, to *int64) (int64, int64) {
	lo := int64(0)
	hi := int64(math.MaxInt64)
	if from != nil {
		lo = *from
	}
	if to != nil {
		hi = *to
	}
	return lo, hi
}
