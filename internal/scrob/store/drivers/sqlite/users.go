package sqlite

import (
	"context"
	"database/sql"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/store"
)

type usersRepo struct {
	q querier
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, u.IsAdmin, u.CreatedAt)
	return mapConstraint(err)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, map[string]int64, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT u.id, u.username, u.password_hash, u.is_admin, u.created_at, COUNT(s.id)
		FROM users u
		LEFT JOIN scrobs s ON s.user_id = u.id
		GROUP BY u.id, u.username, u.password_hash, u.is_admin, u.created_at
		ORDER BY u.created_at DESC, u.id DESC`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var users []domain.User
	counts := make(map[string]int64)
	for rows.Next() {
		var u domain.User
		var count int64
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &count); err != nil {
			return nil, nil, err
		}
		users = append(users, u)
		counts[u.ID] = count
	}
	return users, counts, rows.Err()
}

func (r *usersRepo) CountUserScrobs(ctx context.Context, userID string) (int64, *int64, error) {
	var count int64
	var last sql.NullInt64
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(id), MAX(timestamp) FROM scrobs WHERE user_id = ?`, userID).
		Scan(&count, &last)
	if err != nil {
		return 0, nil, err
	}
	return count, mapNullInt64Ptr(last), nil
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) InstanceStats(ctx context.Context) (domain.InstanceStats, error) {
	var st domain.InstanceStats
	err := r.q.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(id) FROM users),
			(SELECT COUNT(id) FROM scrobs),
			(SELECT COUNT(DISTINCT artist) FROM scrobs),
			(SELECT COUNT(*) FROM (SELECT DISTINCT artist, track FROM scrobs))`).
		Scan(&st.TotalUsers, &st.TotalScrobs, &st.TotalArtists, &st.TotalTracks)
	return st, err
}

func (r *usersRepo) TopUsers(ctx context.Context, limit int) ([]domain.TopUser, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT u.username, COUNT(s.id) AS plays
		FROM users u
		JOIN scrobs s ON s.user_id = u.id
		GROUP BY u.id, u.username
		ORDER BY plays DESC, u.username ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TopUser
	for rows.Next() {
		var u domain.TopUser
		if err := rows.Scan(&u.Username, &u.Count); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(id) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
