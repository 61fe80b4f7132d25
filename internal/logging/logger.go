// Package logging is the structured logger used by the server and its
// middleware. Callers depend on Logger; SlogLogger is the only backend.
package logging

import "context"

// Logger logs with a context so per-request values (the request id) reach
// every record. Args are alternating keys and values:
//
//	log.Info(ctx, "user signed up", "user_id", id, "role", role)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is for degraded but successful operations, such as a token
	// record that failed to persist.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record.
	With(args ...any) Logger
}
