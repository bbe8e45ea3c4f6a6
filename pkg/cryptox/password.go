package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for stored credentials. Fixed
// rather than configurable so every stored hash carries the same cost.
const PasswordCost = 12

// bcrypt operates on at most 72 bytes of input; longer passwords are
// rejected up front instead of being silently truncated.
const maxPasswordLength = 72

var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns the bcrypt hash of password, salted and encoded
// in bcrypt's standard format.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordLength {
		return "", fmt.Errorf("password exceeds %d bytes", maxPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt
// hash. The comparison is constant-time with respect to the hash, a
// property of the bcrypt primitive itself. Any failure, including a
// malformed stored hash, is reported as ErrPasswordMismatch.
func VerifyPassword(password, encodedHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
