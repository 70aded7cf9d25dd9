// Package config loads engine settings from the environment and named
// API profiles from a TOML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mogumo/levemagi/internal/leveling"
)

type Config struct {
	APIURL       string // LEVEMAGI_API_URL (empty = offline, local snapshot only)
	Token        string // LEVEMAGI_TOKEN (the Discord session credential)
	NATSURL      string // LEVEMAGI_NATS_URL (optional, empty = no events)
	StatePath    string // LEVEMAGI_STATE_FILE (default under ~/.local/state/levemagi)
	PollInterval time.Duration   // LEVEMAGI_POLL_INTERVAL (default 30s)
	LevelPolicy  leveling.Policy // LEVEMAGI_LEVEL_POLICY ("clamp" or "extend", default clamp)
}

func Load() (*Config, error) {
	c := &Config{
		APIURL:    os.Getenv("LEVEMAGI_API_URL"),
		Token:     os.Getenv("LEVEMAGI_TOKEN"),
		NATSURL:   os.Getenv("LEVEMAGI_NATS_URL"),
		StatePath: os.Getenv("LEVEMAGI_STATE_FILE"),
	}

	intervalStr := envOrDefault("LEVEMAGI_POLL_INTERVAL", "30s")
	d, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("LEVEMAGI_POLL_INTERVAL: %w", err)
	}
	if d <= 0 {
		return nil, fmt.Errorf("LEVEMAGI_POLL_INTERVAL must be positive, got %s", d)
	}
	c.PollInterval = d

	switch policy := envOrDefault("LEVEMAGI_LEVEL_POLICY", "clamp"); policy {
	case "clamp":
		c.LevelPolicy = leveling.PolicyClamp
	case "extend":
		c.LevelPolicy = leveling.PolicyExtend
	default:
		return nil, fmt.Errorf("LEVEMAGI_LEVEL_POLICY must be clamp or extend, got %q", policy)
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
