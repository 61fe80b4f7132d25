package services

import (
	"context"
	"time"

	"github.com/courtside/courtside/internal/logging"
	"github.com/courtside/courtside/internal/server/repositories/authtokens"
)

// TokenJanitor periodically deletes expired token records.
type TokenJanitor struct {
	tokens   authtokens.Repository
	interval time.Duration
	log      logging.Logger
	now      func() time.Time
}

func NewTokenJanitor(tokens authtokens.Repository, interval time.Duration, log logging.Logger) *TokenJanitor {
	return &TokenJanitor{tokens: tokens, interval: interval, log: log, now: time.Now}
}

// Run purges on every tick until ctx is done. A non-positive interval
// disables the janitor.
func (j *TokenJanitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.PurgeOnce(ctx)
		}
	}
}

// PurgeOnce runs a single purge pass and returns the number of removed records.
func (j *TokenJanitor) PurgeOnce(ctx context.Context) int64 {
	n, err := j.tokens.PurgeExpired(ctx, j.now())
	if err != nil {
		j.log.Warn(ctx, "token purge failed", "error", err)
		return 0
	}
	if n > 0 {
		j.log.Info(ctx, "expired token records purged", "count", n)
	}
	return n
}
