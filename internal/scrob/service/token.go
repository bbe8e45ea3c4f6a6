package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/store"
	"github.com/scrob-fm/scrob/pkg/cryptox"
	"github.com/scrob-fm/scrob/pkg/idx"
	"github.com/scrob-fm/scrob/pkg/slogx"
)

const bearerPrefix = "Bearer "

// maxLabelLength bounds token labels so the tokens listing stays
// readable.
const maxLabelLength = 64

// TokenService issues, resolves and revokes opaque API tokens. Token
// values are 256-bit random strings, shown in full exactly once at
// creation time.
type TokenService struct {
	Store       store.Store
	Credentials *CredentialService
}

// Login verifies a username/password pair and issues a fresh session
// token on success. Each login produces a new token; existing tokens
// are untouched.
func (s *TokenService) Login(
	ctx context.Context,
	username, password string,
) (domain.User, domain.ApiToken, error) {
	u, err := s.Credentials.Verify(ctx, username, password)
	if err != nil {
		return domain.User{}, domain.ApiToken{}, err
	}

	t, err := s.Issue(ctx, u.ID, domain.SessionLabel)
	if err != nil {
		return domain.User{}, domain.ApiToken{}, err
	}

	return u, t, nil
}

// Issue mints a new active token for the user. The returned token is
// the only place the plaintext value is ever exposed.
func (s *TokenService) Issue(
	ctx context.Context,
	userID, label string,
) (domain.ApiToken, error) {
	label = strings.TrimSpace(label)
	if len(label) > maxLabelLength {
		return domain.ApiToken{}, &ValidationError{
			Index:   -1,
			Field:   "label",
			Message: "must be at most 64 characters",
		}
	}

	value, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.ApiToken{}, err
	}

	t := domain.ApiToken{
		ID:        idx.New().String(),
		UserID:    userID,
		Value:     value,
		Label:     label,
		CreatedAt: time.Now().Unix(),
		State:     domain.TokenActive,
	}

	if err := s.Store.ApiTokens().CreateToken(ctx, t); err != nil {
		return domain.ApiToken{}, err
	}

	return t, nil
}

// Resolve maps a presented token value to its owner. Unknown and
// revoked values fail identically with ErrInvalidToken. On success the
// token's last-used timestamp is refreshed best-effort; a failed touch
// never fails the resolution.
func (s *TokenService) Resolve(
	ctx context.Context,
	value string,
) (domain.User, domain.ApiToken, error) {
	if value == "" {
		return domain.User{}, domain.ApiToken{}, ErrInvalidToken
	}

	u, t, err := s.Store.ApiTokens().GetActiveTokenByValue(ctx, value)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.ApiToken{}, ErrInvalidToken
		}
		return domain.User{}, domain.ApiToken{}, err
	}

	now := time.Now().Unix()
	if err := s.Store.ApiTokens().TouchToken(ctx, t.ID, now); err != nil {
		slogx.FromContext(ctx).Warn("failed to touch token",
			"token_id", t.ID,
			"err", err,
		)
	} else {
		t.LastUsedAt = &now
	}

	return u, t, nil
}

// Authenticate resolves a raw Authorization header into the acting
// user. The scheme comparison is case-sensitive per RFC 6750's
// credentials syntax as used by this API.
func (s *TokenService) Authenticate(
	ctx context.Context,
	authorization string,
) (domain.AuthUser, error) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return domain.AuthUser{}, ErrMalformedCredential
	}

	value := strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
	if value == "" {
		return domain.AuthUser{}, ErrMalformedCredential
	}

	u, _, err := s.Resolve(ctx, value)
	if err != nil {
		return domain.AuthUser{}, err
	}

	return domain.AuthUser{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}, nil
}

// Revoke marks one of the owner's tokens as revoked. A missing token is
// ErrNotFound; someone else's token is ErrForbidden. Revoking an
// already-revoked token succeeds.
func (s *TokenService) Revoke(ctx context.Context, ownerID, tokenID string) error {
	t, err := s.Store.ApiTokens().GetTokenByID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if t.UserID != ownerID {
		return ErrForbidden
	}

	if t.Revoked() {
		return nil
	}

	return s.Store.ApiTokens().RevokeToken(ctx, tokenID)
}

// List returns all of the owner's tokens, newest first, including
// revoked ones. Values are present on the domain objects; the transport
// layer must not echo them.
func (s *TokenService) List(ctx context.Context, ownerID string) ([]domain.ApiToken, error) {
	return s.Store.ApiTokens().ListUserTokens(ctx, ownerID)
}
