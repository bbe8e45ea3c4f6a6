package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"regexp"
	"time"
	"unicode"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/store"
	"github.com/scrob-fm/scrob/pkg/cryptox"
	"github.com/scrob-fm/scrob/pkg/idx"
	"github.com/scrob-fm/scrob/pkg/slogx"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// BootstrapService creates the first admin account on an empty
// instance. Once any user exists the bootstrap path is permanently
// closed.
type BootstrapService struct {
	Store store.Store

	// Token, when non-empty, must accompany the bootstrap request.
	// Deployments exposed to the network before first use set this.
	Token string
}

// CreateInitialUser provisions the instance's first user as an admin.
// Fails with ErrAlreadyBootstrapped once any user exists and with
// ErrForbidden when a configured bootstrap token does not match.
func (s *BootstrapService) CreateInitialUser(
	ctx context.Context,
	token, username, password string,
) (domain.User, error) {
	if s.Token != "" {
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
			return domain.User{}, ErrForbidden
		}
	}

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if !empty {
		return domain.User{}, ErrAlreadyBootstrapped
	}

	if !usernameRegex.MatchString(username) {
		return domain.User{}, &ValidationError{
			Index:   -1,
			Field:   "username",
			Message: "must be 3-20 characters of letters, digits or underscores",
		}
	}
	if err := validatePassword(password); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    time.Now().Unix(),
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		// Lost a race with a concurrent bootstrap attempt.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrAlreadyBootstrapped
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("instance bootstrapped",
		"user_id", u.ID,
		"username", u.Username,
	)

	return u, nil
}

// validatePassword enforces the minimum password policy: at least 8
// characters with upper, lower and digit, at most 72 bytes so the hash
// covers the whole secret.
func validatePassword(password string) error {
	if len(password) < 8 {
		return &ValidationError{
			Index:   -1,
			Field:   "password",
			Message: "must be at least 8 characters",
		}
	}
	if len(password) > 72 {
		return &ValidationError{
			Index:   -1,
			Field:   "password",
			Message: "must be at most 72 bytes",
		}
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return &ValidationError{
			Index:   -1,
			Field:   "password",
			Message: "must contain an uppercase letter, a lowercase letter and a digit",
		}
	}

	return nil
}
