// Package memory provides a process-local credential and token store for
// development runs and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/courtside/courtside/internal/common"
	"github.com/courtside/courtside/internal/server/models"
	"github.com/courtside/courtside/internal/server/repositories/authtokens"
	"github.com/courtside/courtside/internal/server/repositories/users"
	"github.com/google/uuid"
)

type Storage struct {
	mu sync.RWMutex

	users      map[string]models.User // by email
	authTokens []models.AuthToken
	now        func() time.Time
}

func New() *Storage {
	return &Storage{
		users: make(map[string]models.User),
		now:   time.Now,
	}
}

var _ users.Repository = (*Storage)(nil)

// Users

func (s *Storage) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return nil, common.ErrConstraintViolation
	}

	user.ID = uuid.NewString()
	user.CreatedAt = s.now()
	s.users[user.Email] = *user

	return user, nil
}

func (s *Storage) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

// Auth tokens

// Tokens exposes the token store half of Storage. Create is taken by the
// user store, so the token methods live on this view.
func (s *Storage) Tokens() *TokenStore {
	return &TokenStore{s: s}
}

type TokenStore struct {
	s *Storage
}

var _ authtokens.Repository = (*TokenStore)(nil)

func (t *TokenStore) Create(ctx context.Context, token *models.AuthToken) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	token.CreatedAt = t.s.now()
	t.s.authTokens = append(t.s.authTokens, *token)
	return nil
}

func (t *TokenStore) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	kept := t.s.authTokens[:0]
	var removed int64
	for _, tok := range t.s.authTokens {
		if tok.ExpiresAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, tok)
	}
	t.s.authTokens = kept
	return removed, nil
}

// List returns a copy of the stored token records.
func (t *TokenStore) List() []models.AuthToken {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	out := make([]models.AuthToken, len(t.s.authTokens))
	copy(out, t.s.authTokens)
	return out
}
