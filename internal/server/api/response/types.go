// Package response defines the JSON bodies returned by the API.
package response

import (
	"github.com/courtside/courtside/internal/server/auth"
	"github.com/courtside/courtside/internal/server/models"
)

// UserResponse is the public view of an account. It never carries the
// password or its hash.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func UserResponseFromModel(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Role: string(u.Role)}
}

type SignupResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeUser is built from verified token claims only.
type MeUser struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
}

type MeResponse struct {
	User MeUser `json:"user"`
}

func MeResponseFromClaims(c *auth.Claims) MeResponse {
	return MeResponse{User: MeUser{ID: c.UserID, Role: c.Role, FirstName: c.FirstName}}
}

type HealthResponse struct {
	Status string `json:"status"`
}
