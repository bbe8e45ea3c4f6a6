package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/store"
	"github.com/scrob-fm/scrob/pkg/idx"
	"github.com/scrob-fm/scrob/pkg/slogx"
)

// DefaultMaxBatchSize caps a single submission unless configured
// otherwise.
const DefaultMaxBatchSize = 50

// futureSkew is how far ahead of server time a play timestamp may sit
// before it is rejected as implausible. Generous enough for client
// clock drift.
const futureSkew = 24 * time.Hour

// ScrobEntry is one listen as submitted by a client.
type ScrobEntry struct {
	Artist    string
	Track     string
	Album     string
	Duration  *int64
	Timestamp int64
}

// NowPlayingEntry is a transient now-playing notification. It carries
// no timestamp of its own; it describes the present.
type NowPlayingEntry struct {
	Artist   string
	Track    string
	Album    string
	Duration *int64
}

// IngestService accepts listen submissions. Batches are all-or-nothing;
// a single invalid entry rejects the whole batch with nothing written.
type IngestService struct {
	Store        store.Store
	MaxBatchSize int

	// nowFn is swapped in tests. Nil means time.Now.
	nowFn func() time.Time
}

func (s *IngestService) now() time.Time {
	if s.nowFn != nil {
		return s.nowFn()
	}
	return time.Now()
}

func (s *IngestService) maxBatch() int {
	if s.MaxBatchSize > 0 {
		return s.MaxBatchSize
	}
	return DefaultMaxBatchSize
}

// NowPlaying validates and acknowledges a now-playing notification.
// The state is deliberately not persisted; it is overwritten by the
// next notification and never appears in history or rankings.
func (s *IngestService) NowPlaying(
	ctx context.Context,
	user domain.AuthUser,
	entry NowPlayingEntry,
) error {
	if err := validateTrack(-1, entry.Artist, entry.Track, entry.Duration); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("now playing",
		"user_id", user.ID,
		"artist", strings.TrimSpace(entry.Artist),
		"track", strings.TrimSpace(entry.Track),
	)

	return nil
}

// SubmitBatch records a batch of listens for the user. All entries are
// validated before any write; all inserts share one transaction and one
// acceptance time. The returned records preserve submission order.
func (s *IngestService) SubmitBatch(
	ctx context.Context,
	user domain.AuthUser,
	entries []ScrobEntry,
) ([]domain.Scrob, error) {
	if len(entries) == 0 {
		return nil, &ValidationError{
			Index:   -1,
			Field:   "scrobs",
			Message: "batch must contain at least one entry",
		}
	}
	if limit := s.maxBatch(); len(entries) > limit {
		return nil, &BatchLimitError{Size: len(entries), Limit: limit}
	}

	acceptedAt := s.now()
	maxTimestamp := acceptedAt.Add(futureSkew).Unix()

	for i, e := range entries {
		if err := validateTrack(i, e.Artist, e.Track, e.Duration); err != nil {
			return nil, err
		}
		if e.Timestamp <= 0 {
			return nil, &ValidationError{
				Index:   i,
				Field:   "timestamp",
				Message: "must be a positive unix timestamp",
			}
		}
		if e.Timestamp > maxTimestamp {
			return nil, &ValidationError{
				Index:   i,
				Field:   "timestamp",
				Message: fmt.Sprintf("too far in the future (max %d)", maxTimestamp),
			}
		}
	}

	scrobs := make([]domain.Scrob, len(entries))
	for i, e := range entries {
		scrobs[i] = domain.Scrob{
			ID:        idx.NewAt(acceptedAt).String(),
			UserID:    user.ID,
			Artist:    strings.TrimSpace(e.Artist),
			Track:     strings.TrimSpace(e.Track),
			Album:     strings.TrimSpace(e.Album),
			Duration:  e.Duration,
			Timestamp: e.Timestamp,
			CreatedAt: acceptedAt.Unix(),
		}
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, sc := range scrobs {
			if err := tx.Scrobs().CreateScrob(ctx, sc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Info("batch accepted",
		"user_id", user.ID,
		"count", len(scrobs),
	)

	return scrobs, nil
}

// validateTrack checks the fields shared by listens and now-playing
// notifications. Whitespace-only artist or track names are empty.
func validateTrack(index int, artist, track string, duration *int64) error {
	if strings.TrimSpace(artist) == "" {
		return &ValidationError{Index: index, Field: "artist", Message: "must not be empty"}
	}
	if strings.TrimSpace(track) == "" {
		return &ValidationError{Index: index, Field: "track", Message: "must not be empty"}
	}
	if duration != nil && *duration < 0 {
		return &ValidationError{Index: index, Field: "duration", Message: "must not be negative"}
	}
	return nil
}
