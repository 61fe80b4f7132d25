// Package services contains server-side business logic. This file implements
// AuthService, which handles signup, login and bearer-token authentication.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/courtside/courtside/internal/common"
	"github.com/courtside/courtside/internal/logging"
	"github.com/courtside/courtside/internal/server/auth"
	"github.com/courtside/courtside/internal/server/models"
	"github.com/courtside/courtside/internal/server/repositories/authtokens"
	"github.com/courtside/courtside/internal/server/repositories/users"
)

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(userID string, role models.Role, firstName string) (string, time.Time, error)
	Verify(token string) (*auth.Claims, error)
}

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      models.Role
}

type LoginInput struct {
	Email    string
	Password string
	// Role is optional. When set it must equal the registered role.
	Role models.Role
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

type AuthService struct {
	users  users.Repository
	tokens authtokens.Repository
	hasher auth.PasswordHasher
	issuer TokenIssuer
	log    logging.Logger
}

func NewAuthService(
	u users.Repository,
	t authtokens.Repository,
	h auth.PasswordHasher,
	i TokenIssuer,
	log logging.Logger,
) *AuthService {
	return &AuthService{users: u, tokens: t, hasher: h, issuer: i, log: log}
}

// Signup registers a new account. The email must not be taken; the
// check-then-insert race is settled by the store's unique constraint.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if blank(in.Email) || in.Password == "" || in.Role == "" {
		return nil, common.NewValidationError("Email, password, and role are required.")
	}
	if !in.Role.Valid() {
		return nil, common.NewValidationError("Role must be %s or %s.", models.RoleCoach, models.RolePlayer)
	}

	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, common.ErrDuplicateUser
	case !errors.Is(err, common.ErrorNotFound):
		s.log.Error(ctx, "signup: user lookup failed", "error", err)
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return nil, err
		}
		s.log.Error(ctx, "signup: hashing failed", "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	user, err := s.users.Create(ctx, &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         in.Role,
	})
	if err != nil {
		if errors.Is(err, common.ErrConstraintViolation) {
			return nil, common.ErrDuplicateUser
		}
		s.log.Error(ctx, "signup: create user failed", "error", err)
		return nil, err
	}

	s.log.Info(ctx, "user signed up", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login checks the credentials and issues a session token. Unknown email and
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if blank(in.Email) || in.Password == "" {
		return nil, common.NewValidationError("Email and password are required.")
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		s.log.Error(ctx, "login: user lookup failed", "error", err)
		return nil, err
	}

	ok, err := s.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		s.log.Error(ctx, "login: stored hash unusable", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	if in.Role != "" && in.Role != user.Role {
		return nil, &common.RoleMismatchError{Registered: string(user.Role)}
	}

	token, expiresAt, err := s.issuer.Issue(user.ID, user.Role, user.FirstName)
	if err != nil {
		s.log.Error(ctx, "login: token signing failed", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	rec := &models.AuthToken{UserID: user.ID, Token: token, ExpiresAt: expiresAt}
	if err := s.tokens.Create(ctx, rec); err != nil {
		s.log.Warn(ctx, "login: token record not persisted", "user_id", user.ID, "error", err)
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID, "role", user.Role)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate verifies a bearer token and returns its claims.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	if token == "" {
		return nil, common.ErrInvalidToken
	}
	claims, err := s.issuer.Verify(token)
	if err != nil {
		s.log.Debug(ctx, "token rejected", "error", err)
		return nil, err
	}
	return claims, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
