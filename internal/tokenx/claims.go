// Package tokenx holds the session token payload shared by the server,
// which signs it, and the CLI, which only reads it for display.
package tokenx

import (
	"fmt"

	"github.com/courtside/courtside/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session token payload. The JSON names are what browser
// clients read when they decode the token for display.
type Claims struct {
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	jwt.RegisteredClaims
}

// DecodeUnverified reads the claims without checking the signature.
// Display only: a client may use it to greet the user, nothing more.
func DecodeUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	return claims, nil
}
