package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdentityName(t *testing.T) {
	assert.Equal(t, "Dake Zhang", (&Identity{FirstName: "Dake", LastName: "Zhang"}).Name())
	assert.Equal(t, "Dake", (&Identity{FirstName: "Dake"}).Name())
	assert.Equal(t, "", (&Identity{}).Name())
}

func TestAuthTokenIsExpired(t *testing.T) {
	assert.True(t, (&AuthToken{ExpiresAt: time.Now().Add(-time.Minute)}).IsExpired())
	assert.False(t, (&AuthToken{ExpiresAt: time.Now().Add(time.Minute)}).IsExpired())
}
