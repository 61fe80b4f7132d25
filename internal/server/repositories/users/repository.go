// Package users declares the credential store contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/courtside/courtside/internal/server/models"
)

// Repository persists user accounts keyed by email.
type Repository interface {
	// Create inserts user and returns it with the store-assigned ID and CreatedAt.
	// A duplicate email yields common.ErrConstraintViolation.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByEmail returns the user with exactly this email, or common.ErrorNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
