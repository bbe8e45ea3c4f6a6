package sqlite

import (
	"context"
	"database/sql"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/store"
)

type apiTokensRepo struct {
	q querier
}

func (r *apiTokensRepo) CreateToken(ctx context.Context, t domain.ApiToken) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO api_tokens (id, user_id, token, label, created_at, last_used_at, revoked)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Value, mapStringNull(t.Label),
		t.CreatedAt, mapOptionalInt64(t.LastUsedAt), t.Revoked())
	return mapConstraint(err)
}

func (r *apiTokensRepo) GetTokenByID(ctx context.Context, id string) (domain.ApiToken, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, token, label, created_at, last_used_at, revoked
		FROM api_tokens WHERE id = ?`, id)
	return scanToken(row)
}

func (r *apiTokensRepo) GetActiveTokenByValue(
	ctx context.Context,
	value string,
) (domain.User, domain.ApiToken, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT t.id, t.user_id, t.token, t.label, t.created_at, t.last_used_at, t.revoked,
		       u.id, u.username, u.password_hash, u.is_admin, u.created_at
		FROM api_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token = ? AND t.revoked = 0`, value)

	var t domain.ApiToken
	var u domain.User
	var label sql.NullString
	var lastUsed sql.NullInt64
	var revoked bool
	err := row.Scan(
		&t.ID, &t.UserID, &t.Value, &label, &t.CreatedAt, &lastUsed, &revoked,
		&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, domain.ApiToken{}, mapNotFound(err)
	}
	t.Label = mapNullString(label)
	t.LastUsedAt = mapNullInt64Ptr(lastUsed)
	t.State = tokenState(revoked)
	return u, t, nil
}

func (r *apiTokensRepo) TouchToken(ctx context.Context, id string, usedAt int64) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE api_tokens SET last_used_at = ? WHERE id = ?`, usedAt, id)
	return err
}

func (r *apiTokensRepo) RevokeToken(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE api_tokens SET revoked = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *apiTokensRepo) ListUserTokens(ctx context.Context, userID string) ([]domain.ApiToken, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, token, label, created_at, last_used_at, revoked
		FROM api_tokens
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []domain.ApiToken
	for rows.Next() {
		var t domain.ApiToken
		var label sql.NullString
		var lastUsed sql.NullInt64
		var revoked bool
		if err := rows.Scan(&t.ID, &t.UserID, &t.Value, &label, &t.CreatedAt, &lastUsed, &revoked); err != nil {
			return nil, err
		}
		t.Label = mapNullString(label)
		t.LastUsedAt = mapNullInt64Ptr(lastUsed)
		t.State = tokenState(revoked)
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func scanToken(row *sql.Row) (domain.ApiToken, error) {
	var t domain.ApiToken
	var label sql.NullString
	var lastUsed sql.NullInt64
	var revoked bool
	err := row.Scan(&t.ID, &t.UserID, &t.Value, &label, &t.CreatedAt, &lastUsed, &revoked)
	if err != nil {
		return domain.ApiToken{}, mapNotFound(err)
	}
	t.Label = mapNullString(label)
	t.LastUsedAt = mapNullInt64Ptr(lastUsed)
	t.State = tokenState(revoked)
	return t, nil
}
