package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; the two are never distinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrMalformedCredential reports a missing or malformed
	// Authorization header (no Bearer scheme, empty token).
	ErrMalformedCredential = errors.New("missing_or_malformed_credential")

	// ErrInvalidToken covers unknown and revoked tokens uniformly.
	ErrInvalidToken = errors.New("invalid_or_revoked_token")

	ErrNotFound  = errors.New("not_found")
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyBootstrapped is returned when the bootstrap path is hit
	// after the first user exists.
	ErrAlreadyBootstrapped = errors.New("already_bootstrapped")
)

// ValidationError reports a malformed field with enough detail to fix
// the request. Index addresses the failing entry of a batch, -1 for
// non-batch inputs.
type ValidationError struct {
	Index   int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("entry %d: %s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BatchLimitError rejects over-limit batches; they are never silently
// truncated.
type BatchLimitError struct {
	Size  int
	Limit int
}

func (e *BatchLimitError) Error() string {
	return fmt.Sprintf("batch of %d exceeds maximum of %d entries", e.Size, e.Limit)
}
