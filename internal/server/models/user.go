package models

import "time"

// Role is the fixed classification chosen at signup. It decides which
// dashboard the client routes to; it is not a permission system.
type Role string

const (
	RoleCoach  Role = "Coach"
	RolePlayer Role = "Player"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleCoach || r == RolePlayer
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	CreatedAt    time.Time
}
