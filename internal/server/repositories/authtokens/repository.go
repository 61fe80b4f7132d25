// Package authtokens declares the store of issued session-token records
// and its PostgreSQL and Redis implementations.
package authtokens

import (
	"context"
	"time"

	"github.com/courtside/courtside/internal/server/models"
)

// Repository records issued session tokens. Records are an audit trail;
// nothing reads them back to decide whether a session is valid.
type Repository interface {
	// Create stores a record of an issued token.
	Create(ctx context.Context, token *models.AuthToken) error

	// PurgeExpired deletes records whose expiry is before the given time
	// and returns how many were removed.
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}
