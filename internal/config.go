package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config controls storage location and responder behaviour. It is read
// from an optional TOML file; command-line flags override it.
type Config struct {
	// StoragePath is the SQLite database path. Empty means the default
	// under the user's home directory.
	StoragePath string `toml:"storage_path"`

	// ResponseDelayMs offsets assistant timestamps from the triggering
	// user message, modeling response latency.
	ResponseDelayMs int `toml:"response_delay_ms"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		ResponseDelayMs: 500,
	}
}

// DefaultStoragePath returns the default database location,
// ~/.chat-session/chat.db.
func DefaultStoragePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".chat-session", "chat.db"), nil
}

// DefaultConfigPath returns ~/.chat-session/config.toml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".chat-session", "config.toml"), nil
}

// LoadConfig reads the TOML config at path, or the default location when
// path is empty. A missing file is not an error; the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.ResponseDelayMs < 0 {
		cfg.ResponseDelayMs = 0
	}
	return cfg, nil
}

// ResponseDelay returns the configured delay as a duration.
func (c Config) ResponseDelay() time.Duration {
	return time.Duration(c.ResponseDelayMs) * time.Millisecond
}
