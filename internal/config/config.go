// Package config loads calc-mcp settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
)

// FileName is the config file name inside the user config directory
const FileName = "config.toml"

// Defaults
const (
	DefaultLogLevel = "info"
)

var (
	// ErrUnknownLogLevel is returned for log levels other than debug, info, warn and error
	ErrUnknownLogLevel = errors.New("unknown log level")

	// ErrInvalidLocale is returned when the locale is not a BCP 47 tag
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrUnknownKey is returned when the config file has keys calc-mcp does not read
	ErrUnknownKey = errors.New("unknown config key")
)

// Default returns the configuration used when no file is present
func Default() *types.Config {
	return &types.Config{
		LogLevel: DefaultLogLevel,
		Locale:   calc.DefaultLocale.String(),
	}
}

// DefaultPath returns the config file path under the user config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, project.Name, FileName)
}

// Load reads the config file at path from fs. An empty path means
// DefaultPath, which may be absent; an explicit path must exist.
func Load(fs afero.Fs, path string) (*types.Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !exists {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the log level and locale of cfg
func Validate(cfg *types.Config) error {
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return err
	}

	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidLocale, cfg.Locale, err)
	}

	return nil
}

// ParseLevel converts a log level name into a slog.Level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
	}
}
