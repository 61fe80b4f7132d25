package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleCoach.Valid())
	assert.True(t, RolePlayer.Valid())
	assert.False(t, Role("coach").Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("Admin").Valid())
}

func TestAuthToken_ExpiredAtBoundary(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tok := &AuthToken{ExpiresAt: now}

	assert.True(t, tok.Expired(now))
	assert.True(t, tok.Expired(now.Add(time.Second)))
	assert.False(t, tok.Expired(now.Add(-time.Second)))
}
