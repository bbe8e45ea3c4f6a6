package service

import (
	"context"
	"errors"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/store"
	"github.com/scrob-fm/scrob/pkg/cryptox"
)

// CredentialService verifies username/password pairs against the user
// store.
type CredentialService struct {
	Store store.Store
}

// Verify looks the user up by exact username and checks the supplied
// plaintext against the stored bcrypt hash. Unknown user and wrong
// password fail identically with ErrInvalidCredentials so usernames
// cannot be enumerated. No side effects on failure.
func (s *CredentialService) Verify(
	ctx context.Context,
	username, password string,
) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a comparison anyway so the unknown-user path does not
			// return measurably faster than the wrong-password path.
			_ = cryptox.VerifyPassword(password, dummyHash)
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return u, nil
}

// dummyHash is a bcrypt hash of an unguessable throwaway value, used to
// equalize timing on the unknown-user path.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"
