// Package common contains shared constants and sentinel errors used across
// Courtside server and client components.
package common

// AuthorizationHeaderName carries the bearer session token on protected requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in the Authorization header value.
const BearerPrefix = "Bearer "

// RequestIDHeaderName is echoed back on every HTTP response.
const RequestIDHeaderName = "X-Request-ID"
