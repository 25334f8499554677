package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1024, cfg.Server.MaxConnections)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 1000, cfg.Game.ShufflePause)
	assert.Equal(t, 2500, cfg.Game.TrickPause)
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, 20, cfg.Security.MessageLimit.MaxPerSecond)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  host: "127.0.0.1"
  port: 9000
redis:
  addr: "redis:6379"
game:
  trick_pause: 500
  room_timeout: 5
security:
  allowed_origins:
    - "https://belote.example.com"
  chat_limit:
    cooldown: 30
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 500, cfg.Game.TrickPause)
	assert.Equal(t, []string{"https://belote.example.com"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, 30, cfg.Security.ChatLimit.Cooldown)

	// Unset values still fall back to the defaults.
	assert.Equal(t, 1024, cfg.Server.MaxConnections)
	assert.Equal(t, 2000, cfg.Game.DealStepPause)
	assert.Equal(t, 5, cfg.Security.RateLimit.MaxPerSecond)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestDurations(t *testing.T) {
	cfg := Default()

	assert.Equal(t, time.Second, cfg.Game.ShufflePauseDuration())
	assert.Equal(t, 2*time.Second, cfg.Game.DealStepPauseDuration())
	assert.Equal(t, 2500*time.Millisecond, cfg.Game.TrickPauseDuration())
	assert.Equal(t, 30*time.Minute, cfg.Game.RoomTimeoutDuration())
	assert.Equal(t, 5*time.Second, cfg.Game.ShutdownCheckIntervalDuration())
	assert.Equal(t, 300*time.Second, cfg.Security.RateLimit.BanDurationTime())
	assert.Equal(t, 10*time.Second, cfg.Security.ChatLimit.CooldownDuration())
}
