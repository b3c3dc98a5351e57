package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "users.json", cfg.SnapshotPath)
	assert.True(t, cfg.WatchSnapshot)
	assert.Equal(t, "journey-caller", cfg.BasicAuthUser)
	assert.Empty(t, cfg.BasicAuthHash)
	assert.Equal(t, 15*time.Minute, cfg.AdminTokenTTL)
	assert.Equal(t, 10*time.Second, cfg.SimulateMaxDelay)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ROSTER_ADDR", ":9090")
	t.Setenv("ROSTER_SNAPSHOT_PATH", "/data/directory.json")
	t.Setenv("ROSTER_SNAPSHOT_WATCH", "false")
	t.Setenv("ROSTER_ADMIN_TOKEN_TTL", "1h")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/data/directory.json", cfg.SnapshotPath)
	assert.False(t, cfg.WatchSnapshot)
	assert.Equal(t, time.Hour, cfg.AdminTokenTTL)
}

func TestFromEnvIgnoresMalformedDuration(t *testing.T) {
	t.Setenv("ROSTER_SIMULATE_MAX_DELAY", "not-a-duration")

	cfg := FromEnv()
	assert.Equal(t, 10*time.Second, cfg.SimulateMaxDelay)
}
