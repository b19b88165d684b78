// Package config loads the SSH server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Server holds the settings for cmd/server. Command-line flags override
// the environment.
type Server struct {
	Port        int           `env:"HANGMAN_SSH_PORT"     envDefault:"2222"`
	HostKey     string        `env:"HANGMAN_HOST_KEY"     envDefault:"server_host_key"`
	MaxSessions int           `env:"HANGMAN_MAX_SESSIONS" envDefault:"32"`
	IdleTimeout time.Duration `env:"HANGMAN_IDLE_TIMEOUT" envDefault:"10m"`
	RoundLog    bool          `env:"HANGMAN_ROUND_LOG"    envDefault:"true"`
	LogLevel    string        `env:"HANGMAN_LOG_LEVEL"    envDefault:"info"`
}

// Load parses the server config from environment variables.
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Server) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Port)
	}
	if c.HostKey == "" {
		return fmt.Errorf("%w: empty host key path", ErrInvalid)
	}
	if c.MaxSessions < 1 {
		return fmt.Errorf("%w: max sessions must be positive, got %d", ErrInvalid, c.MaxSessions)
	}
	if c.IdleTimeout < 0 {
		return fmt.Errorf("%w: negative idle timeout %s", ErrInvalid, c.IdleTimeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c Server) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}
