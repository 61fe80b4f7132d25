// Package client is the HTTP client for the Courtside auth API.
//
// # Error Handling
//
// Non-2xx replies are returned as *APIError, which carries the status and the
// machine code from the body. Callers match them with errors.Is against the
// sentinels ErrBadRequest, ErrInvalidCredentials, ErrRoleMismatch,
// ErrUnauthorized, ErrConflict, ErrRateLimited and ErrServer. Transport
// failures match ErrUnavailable.
//
// All operations accept context.Context and honor cancellation.
package client
