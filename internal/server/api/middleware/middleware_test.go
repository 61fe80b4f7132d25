package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/courtside/courtside/internal/common"
	"github.com/courtside/courtside/internal/logging"
	"github.com/courtside/courtside/internal/server/api/apierr"
	"github.com/courtside/courtside/internal/server/auth"
	"github.com/courtside/courtside/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
})

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.ErrorResponse {
	t.Helper()
	var body apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// --- recovery ---

func TestRecovery_ReturnsJSON500(t *testing.T) {
	h := Recovery(logging.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, apierr.CodeInternalError, decodeError(t, rr).Code)
}

// --- logging ---

func TestLogging_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	var seen string
	h := Logging(logging.NewJSON(&buf, "info"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil))

	id := rr.Header().Get(common.RequestIDHeaderName)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, seen)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, id, rec["request_id"])
	assert.Equal(t, "/api/auth/signup", rec["path"])
	assert.Equal(t, float64(http.StatusCreated), rec["status"])
	assert.Equal(t, float64(0), rec["size"])
	assert.Equal(t, "192.0.2.1", rec["client_ip"])
}

func TestLogging_ReusesIncomingRequestID(t *testing.T) {
	h := Logging(logging.NewNop())(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(common.RequestIDHeaderName, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(common.RequestIDHeaderName))
}

func TestResponseWriter_TracksStatusAndSize(t *testing.T) {
	rw := &ResponseWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

	_, err := rw.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = rw.Write([]byte("!"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, 6, rw.Size())

	rw.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, rw.Status())
}

// --- cors ---

func TestCORS_Wildcard(t *testing.T) {
	h := CORS([]string{"*"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS([]string{"https://app.courtside.dev"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "https://app.courtside.dev")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://app.courtside.dev", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	h := CORS([]string{"https://app.courtside.dev"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rr.Header().Get("Vary"))
}

func TestCORS_DisallowedPreflightVariesByOrigin(t *testing.T) {
	h := CORS([]string{"https://app.courtside.dev"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, []string{"Origin"}, rr.Header().Values("Vary"))
}

// --- rate limit ---

func TestRateLimiter_RejectsOverBudget(t *testing.T) {
	l := NewRateLimiter(6) // burst 1
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	h := l.Handler(okHandler)

	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1234").Code)

	rr := do("10.0.0.1:5678")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, apierr.CodeRateLimited, decodeError(t, rr).Code)

	// Another client has its own budget.
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1234").Code)

	// The budget refills over time.
	now = now.Add(10 * time.Second)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1234").Code)
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	l := NewRateLimiter(60)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.allow("a")
	now = now.Add(10 * time.Minute)
	l.allow("b")

	_, ok := l.clients["a"]
	assert.False(t, ok)
	assert.Len(t, l.clients, 1)
}

func TestRateLimiter_Disabled(t *testing.T) {
	l := NewRateLimiter(0)
	assert.Nil(t, l)

	h := l.Handler(okHandler)
	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
}

// --- auth ---

type fakeAuthenticator struct {
	claims *auth.Claims
	err    error
	got    string
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	f.got = token
	return f.claims, f.err
}

func TestAuth_MissingHeader(t *testing.T) {
	h := Auth(&fakeAuthenticator{})(okHandler)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeUnauthorized, decodeError(t, rr).Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	h := Auth(&fakeAuthenticator{err: common.ErrTokenExpired})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_StoresClaims(t *testing.T) {
	fa := &fakeAuthenticator{claims: &auth.Claims{UserID: "u-1", Role: string(models.RolePlayer)}}
	var got *auth.Claims
	h := Auth(fa)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClaims(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "bearer tok-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "tok-1", fa.got)
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.UserID)
}

func TestGetClaims_Absent(t *testing.T) {
	assert.Nil(t, GetClaims(context.Background()))
}
