package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/courtside/courtside/internal/logging"
	"github.com/courtside/courtside/internal/server/api"
	"github.com/courtside/courtside/internal/server/auth"
	"github.com/courtside/courtside/internal/server/repositories/memory"
	"github.com/courtside/courtside/internal/server/services"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.New()
	svc := services.NewAuthService(store, store.Tokens(),
		auth.NewBcryptHasher(bcrypt.MinCost),
		auth.NewIssuer([]byte("client-test"), 7*24*time.Hour),
		logging.NewNop())

	srv := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:         logging.NewNop(),
		AuthService:    svc,
		AllowedOrigins: []string{"*"},
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClient_AgainstServer(t *testing.T) {
	srv := newAPIServer(t)
	c := NewHTTPClient(srv.URL+"/", 5*time.Second)
	ctx := context.Background()

	h, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)

	su, err := c.Signup(ctx, SignupRequest{Email: "a@b.com", Password: "pw123456", FirstName: "Ann", Role: "Coach"})
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", su.Message)
	assert.Equal(t, "Coach", su.User.Role)

	_, err = c.Signup(ctx, SignupRequest{Email: "a@b.com", Password: "pw123456", Role: "Coach"})
	assert.ErrorIs(t, err, ErrConflict)

	li, err := c.Login(ctx, LoginRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, li.Token)
	assert.Equal(t, su.User.ID, li.User.ID)

	_, err = c.Login(ctx, LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Login(ctx, LoginRequest{Email: "a@b.com", Password: "pw123456", Role: "Player"})
	assert.ErrorIs(t, err, ErrRoleMismatch)
	assert.Contains(t, err.Error(), "Account is registered as a Coach.")

	me, err := c.Me(ctx, li.Token)
	require.NoError(t, err)
	assert.Equal(t, su.User.ID, me.User.ID)
	assert.Equal(t, "Ann", me.User.FirstName)

	_, err = c.Me(ctx, "bogus")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	_, err = c.Signup(ctx, SignupRequest{Email: "b@b.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestHTTPClient_ServerErrorWithoutJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, time.Second).Health(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream exploded", apiErr.Message)
	assert.ErrorIs(t, err, ErrServer)
}

func TestHTTPClient_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"Too many requests. Please slow down.","code":"RATE_LIMITED"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, time.Second).Login(context.Background(), LoginRequest{Email: "a", Password: "b"})
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, "Too many requests. Please slow down. (RATE_LIMITED)", err.Error())
}

func TestHTTPClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, time.Second).Health(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_SendsBearerToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"user":{"id":"u","role":"Player"}}`))
	}))
	defer srv.Close()

	me, err := NewHTTPClient(srv.URL, time.Second).Me(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", got)
	assert.Equal(t, "Player", me.User.Role)
}
