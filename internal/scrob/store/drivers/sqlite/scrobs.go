package sqlite

import (
	"context"
	"database/sql"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
)

type scrobsRepo struct {
	q querier
}

func (r *scrobsRepo) CreateScrob(ctx context.Context, s domain.Scrob) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO scrobs (id, user_id, artist, track, album, duration, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Artist, s.Track, mapStringNull(s.Album),
		mapOptionalInt64(s.Duration), s.Timestamp, s.CreatedAt)
	return mapConstraint(err)
}

func (r *scrobsRepo) RecentScrobs(ctx context.Context, userID string, limit int) ([]domain.Scrob, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, artist, track, album, duration, timestamp, created_at
		FROM scrobs
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scrobs []domain.Scrob
	for rows.Next() {
		var s domain.Scrob
		var album sql.NullString
		var duration sql.NullInt64
		if err := rows.Scan(&s.ID, &s.UserID, &s.Artist, &s.Track, &album, &duration, &s.Timestamp, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Album = mapNullString(album)
		s.Duration = mapNullInt64Ptr(duration)
		scrobs = append(scrobs, s)
	}
	return scrobs, rows.Err()
}

func (r *scrobsRepo) TopArtists(
	ctx context.Context,
	userID string,
	from, to int64,
	limit int,
) ([]domain.TopArtist, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT artist, COUNT(id) AS plays
		FROM scrobs
		WHERE user_id = ? AND timestamp >= ? AND timestamp <= ?
		GROUP BY artist
		ORDER BY plays DESC, artist ASC
		LIMIT ?`, userID, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TopArtist
	for rows.Next() {
		var a domain.TopArtist
		if err := rows.Scan(&a.Name, &a.Count); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *scrobsRepo) TopTracks(
	ctx context.Context,
	userID string,
	from, to int64,
	limit int,
) ([]domain.TopTrack, error) {
	// Album is not part of the grouping key: the same track on different
	// albums aggregates together.
	rows, err := r.q.QueryContext(ctx, `
		SELECT artist, track, COUNT(id) AS plays
		FROM scrobs
		WHERE user_id = ? AND timestamp >= ? AND timestamp <= ?
		GROUP BY artist, track
		ORDER BY plays DESC, artist ASC, track ASC
		LIMIT ?`, userID, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TopTrack
	for rows.Next() {
		var t domain.TopTrack
		if err := rows.Scan(&t.Artist, &t.Track, &t.Count); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
