// Package apierr maps service errors onto HTTP status codes and the JSON
// error body {"error": "...", "code": "..."}.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/courtside/courtside/internal/common"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateUser      = "DUPLICATE_USER"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeRoleMismatch       = "ROLE_MISMATCH"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeRateLimited        = "RATE_LIMITED"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

type httpError struct {
	status int
	body   ErrorResponse
}

func (e *httpError) Error() string {
	return e.body.Error
}

// WriteError writes the response for err.
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(he.body)
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var ve *common.ValidationError
	var rm *common.RoleMismatchError

	switch {
	case errors.As(err, &ve):
		return &httpError{http.StatusBadRequest, ErrorResponse{ve.Message, CodeValidation}}
	case errors.Is(err, common.ErrValidation):
		return &httpError{http.StatusBadRequest, ErrorResponse{"Invalid request.", CodeValidation}}
	case errors.Is(err, common.ErrDuplicateUser):
		return &httpError{http.StatusConflict, ErrorResponse{"User already exists.", CodeDuplicateUser}}
	case errors.Is(err, common.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, ErrorResponse{"Invalid credentials.", CodeInvalidCredentials}}
	case errors.As(err, &rm):
		return &httpError{http.StatusUnauthorized, ErrorResponse{rm.Error(), CodeRoleMismatch}}
	case errors.Is(err, common.ErrTokenExpired):
		return &httpError{http.StatusUnauthorized, ErrorResponse{"Token expired.", CodeUnauthorized}}
	case errors.Is(err, common.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, ErrorResponse{"Invalid token.", CodeUnauthorized}}
	case errors.Is(err, common.ErrStoreUnavailable):
		return &httpError{http.StatusInternalServerError, ErrorResponse{"Service temporarily unavailable.", CodeStoreUnavailable}}
	default:
		return &httpError{http.StatusInternalServerError, ErrorResponse{"Internal server error.", CodeInternalError}}
	}
}

func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, ErrorResponse{message, CodeInvalidRequest}}
}

func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, ErrorResponse{"Authentication required.", CodeUnauthorized}}
}

func NewRateLimitedError() error {
	return &httpError{http.StatusTooManyRequests, ErrorResponse{"Too many requests. Please slow down.", CodeRateLimited}}
}

func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, ErrorResponse{"Not found.", CodeNotFound}}
}

func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, ErrorResponse{"Method not allowed.", CodeMethodNotAllowed}}
}

func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, ErrorResponse{"Internal server error.", CodeInternalError}}
}
