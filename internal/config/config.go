package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration tree.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Game     GameConfig     `yaml:"game"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig paces the automatic game phases. Pauses are milliseconds,
// timeouts are minutes.
type GameConfig struct {
	ShufflePause          int `yaml:"shuffle_pause"`           // before the first dealing chunk
	DealStepPause         int `yaml:"deal_step_pause"`         // between dealing chunks
	TrickPause            int `yaml:"trick_pause"`             // a finished trick stays visible
	RoomTimeout           int `yaml:"room_timeout"`            // idle lobby lifetime, minutes
	ShutdownCheckInterval int `yaml:"shutdown_check_interval"` // seconds between shutdown polls
	RoomCleanupDelay      int `yaml:"room_cleanup_delay"`      // seconds before final shutdown
}

// SecurityConfig groups the rate-limiting knobs.
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
	MessageLimit   MsgLimitConfig  `yaml:"message_limit"`
	ChatLimit      ChatLimitConfig `yaml:"chat_limit"`
}

// RateLimitConfig throttles connection attempts per IP.
type RateLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
	MaxPerMinute int `yaml:"max_per_minute"`
	BanDuration  int `yaml:"ban_duration"` // seconds
}

// MsgLimitConfig throttles frames per connected client.
type MsgLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
}

// ChatLimitConfig throttles chat messages per client.
type ChatLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
	MaxPerMinute int `yaml:"max_per_minute"`
	Cooldown     int `yaml:"cooldown"` // seconds
}

func (c *GameConfig) ShufflePauseDuration() time.Duration {
	return time.Duration(c.ShufflePause) * time.Millisecond
}

func (c *GameConfig) DealStepPauseDuration() time.Duration {
	return time.Duration(c.DealStepPause) * time.Millisecond
}

func (c *GameConfig) TrickPauseDuration() time.Duration {
	return time.Duration(c.TrickPause) * time.Millisecond
}

func (c *GameConfig) RoomTimeoutDuration() time.Duration {
	return time.Duration(c.RoomTimeout) * time.Minute
}

func (c *GameConfig) ShutdownCheckIntervalDuration() time.Duration {
	return time.Duration(c.ShutdownCheckInterval) * time.Second
}

func (c *GameConfig) RoomCleanupDelayDuration() time.Duration {
	return time.Duration(c.RoomCleanupDelay) * time.Second
}

func (c *RateLimitConfig) BanDurationTime() time.Duration {
	return time.Duration(c.BanDuration) * time.Second
}

func (c *ChatLimitConfig) CooldownDuration() time.Duration {
	return time.Duration(c.Cooldown) * time.Second
}

// Load reads a YAML config file and fills in defaults for missing values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxConnections == 0 {
		cfg.Server.MaxConnections = 1024
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.ShufflePause == 0 {
		cfg.Game.ShufflePause = 1000
	}
	if cfg.Game.DealStepPause == 0 {
		cfg.Game.DealStepPause = 2000
	}
	if cfg.Game.TrickPause == 0 {
		cfg.Game.TrickPause = 2500
	}
	if cfg.Game.RoomTimeout == 0 {
		cfg.Game.RoomTimeout = 30
	}
	if cfg.Game.ShutdownCheckInterval == 0 {
		cfg.Game.ShutdownCheckInterval = 5
	}
	if cfg.Game.RoomCleanupDelay == 0 {
		cfg.Game.RoomCleanupDelay = 3
	}
	if len(cfg.Security.AllowedOrigins) == 0 {
		cfg.Security.AllowedOrigins = []string{"*"}
	}
	if cfg.Security.RateLimit.MaxPerSecond == 0 {
		cfg.Security.RateLimit.MaxPerSecond = 5
	}
	if cfg.Security.RateLimit.MaxPerMinute == 0 {
		cfg.Security.RateLimit.MaxPerMinute = 60
	}
	if cfg.Security.RateLimit.BanDuration == 0 {
		cfg.Security.RateLimit.BanDuration = 300
	}
	if cfg.Security.MessageLimit.MaxPerSecond == 0 {
		cfg.Security.MessageLimit.MaxPerSecond = 20
	}
	if cfg.Security.ChatLimit.MaxPerSecond == 0 {
		cfg.Security.ChatLimit.MaxPerSecond = 2
	}
	if cfg.Security.ChatLimit.MaxPerMinute == 0 {
		cfg.Security.ChatLimit.MaxPerMinute = 30
	}
	if cfg.Security.ChatLimit.Cooldown == 0 {
		cfg.Security.ChatLimit.Cooldown = 10
	}
}
