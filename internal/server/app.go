// Package server initializes and runs the Courtside auth server.
// It selects storage backends, runs migrations, serves the HTTP API and
// the token janitor, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/courtside/courtside/internal/logging"
	"github.com/courtside/courtside/internal/server/api"
	"github.com/courtside/courtside/internal/server/auth"
	"github.com/courtside/courtside/internal/server/config"
	"github.com/courtside/courtside/internal/server/repositories/authtokens"
	"github.com/courtside/courtside/internal/server/repositories/memory"
	"github.com/courtside/courtside/internal/server/repositories/repomanager"
	"github.com/courtside/courtside/internal/server/repositories/users"
	"github.com/courtside/courtside/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	server  *api.Server
	janitor *services.TokenJanitor
	closers []func() error
}

// NewApp opens the configured stores and builds the HTTP server. Nothing is
// served until Run.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, logger: logger}

	if c.SecretKey == config.DevSecretKey {
		logger.Warn(ctx, "using the built-in development JWT secret; set JWT_SECRET in production")
	}

	userRepo, tokenRepo, err := app.initStorage(ctx)
	if err != nil {
		app.close(ctx)
		return nil, err
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.TokenTTL)
	hasher := auth.NewBcryptHasher(c.BcryptCost)
	authService := services.NewAuthService(userRepo, tokenRepo, hasher, issuer, logger.With("component", "auth"))

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger.With("component", "http"),
		AuthService:    authService,
		AllowedOrigins: c.CORSAllowedOrigins,
		LoginRateLimit: c.LoginRateLimit,
	})

	app.server = api.NewServer(router, api.ServerConfig{
		Addr:            c.HTTPAddr,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		ShutdownTimeout: c.ShutdownTimeout,
	}, logger)
	app.janitor = services.NewTokenJanitor(tokenRepo, c.TokenPurgeInterval, logger.With("component", "janitor"))

	return app, nil
}

func (app *App) initStorage(ctx context.Context) (users.Repository, authtokens.Repository, error) {
	var (
		db  *sql.DB
		rm  repomanager.RepositoryManager
		mem *memory.Storage
		err error
	)

	if app.config.Storage == config.StoragePostgres {
		db, err = repomanager.Open(ctx, app.config.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db init error: %w", err)
		}
		app.closers = append(app.closers, db.Close)

		rm = repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		app.logger.Info(ctx, "database ready")
	}

	memoryStore := func() *memory.Storage {
		if mem == nil {
			mem = memory.New()
		}
		return mem
	}

	var userRepo users.Repository
	switch app.config.Storage {
	case config.StoragePostgres:
		userRepo = rm.Users(db)
	default:
		app.logger.Warn(ctx, "using in-memory credential store; accounts are lost on restart")
		userRepo = memoryStore()
	}

	var tokenRepo authtokens.Repository
	switch app.config.TokenStore {
	case config.StoragePostgres:
		tokenRepo = rm.AuthTokens(db)
	case config.StorageRedis:
		r, err := authtokens.NewRedisRepository(ctx, app.config.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("redis init error: %w", err)
		}
		app.closers = append(app.closers, r.Close)
		tokenRepo = r
	default:
		tokenRepo = memoryStore().Tokens()
	}

	return userRepo, tokenRepo, nil
}

// Run serves until SIGINT, SIGTERM, SIGQUIT, cancellation of ctx, or a
// server error, then shuts down and releases the stores.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...",
		"storage", app.config.Storage,
		"token_store", app.config.TokenStore,
	)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.janitor.Run(ctx)
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Start(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}
	stop()

	if err := app.server.Shutdown(context.WithoutCancel(ctx)); err != nil {
		app.logger.Error(ctx, "http shutdown failed", "error", err)
	}

	wg.Wait()
	app.close(ctx)

	if runErr != nil {
		return runErr
	}
	app.logger.Info(ctx, "app stopped")
	return nil
}

func (app *App) close(ctx context.Context) {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.logger.Error(ctx, "close failed", "error", err)
		}
	}
	app.closers = nil
}

// Main loads config, builds the app and runs it. It returns the process exit code.
func Main() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)
	ctx := context.Background()

	app, err := NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		return 1
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped with error", "error", err)
		return 1
	}
	return 0
}
