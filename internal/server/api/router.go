// Package api wires the HTTP routes, middleware and server for the auth API.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/courtside/courtside/internal/logging"
	"github.com/courtside/courtside/internal/server/api/handler"
	"github.com/courtside/courtside/internal/server/api/middleware"
	"github.com/courtside/courtside/internal/server/services"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         logging.Logger
	AuthService    *services.AuthService
	AllowedOrigins []string
	// LoginRateLimit is requests per minute per client IP on the auth routes; 0 disables.
	LoginRateLimit int
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)

	authHandler := handler.NewAuthHandler(cfg.AuthService)
	limiter := middleware.NewRateLimiter(cfg.LoginRateLimit)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api.Handle("/auth/signup", limiter.Handler(http.HandlerFunc(authHandler.Signup))).Methods(http.MethodPost)
	api.Handle("/auth/login", limiter.Handler(http.HandlerFunc(authHandler.Login))).Methods(http.MethodPost)

	// Protected routes
	requireAuth := middleware.Auth(cfg.AuthService)
	api.Handle("/auth/me", requireAuth(http.HandlerFunc(authHandler.Me))).Methods(http.MethodGet)

	// Outermost first: recovery, request id and access log, then CORS.
	var h http.Handler = r
	h = middleware.CORS(cfg.AllowedOrigins)(h)
	h = middleware.Logging(cfg.Logger)(h)
	h = middleware.Recovery(cfg.Logger)(h)
	return h
}
