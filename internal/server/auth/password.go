package auth

import (
	"errors"
	"fmt"

	"github.com/courtside/courtside/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything after the first 72 bytes.
const maxPasswordBytes = 72

// ErrMalformedHash is returned by Verify when the stored digest is not a bcrypt hash.
var ErrMalformedHash = errors.New("malformed password hash")

// PasswordHasher turns passwords into salted one-way digests and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// an error means the hash itself is unusable.
	Verify(password, hash string) (bool, error)
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", common.NewValidationError("password must be at most %d bytes", maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify never matches a password longer than Hash accepts; bcrypt would
// otherwise compare only its first 72 bytes.
func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	if len(password) > maxPasswordBytes {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}
