package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionTTLDefaults(t *testing.T) {
	t.Setenv("SESSION_CACHE_TTL_MINUTES", "")
	assert.Equal(t, 10*time.Minute, Load().SessionTTL)
}

func TestSessionTTLFromEnv(t *testing.T) {
	t.Setenv("SESSION_CACHE_TTL_MINUTES", "45")
	assert.Equal(t, 45*time.Minute, Load().SessionTTL)
}

func TestSessionTTLIgnoresGarbage(t *testing.T) {
	t.Setenv("SESSION_CACHE_TTL_MINUTES", "soon")
	assert.Equal(t, 10*time.Minute, Load().SessionTTL)
}
