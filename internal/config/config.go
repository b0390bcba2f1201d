// ABOUTME: Configuration management for datepage defaults
// ABOUTME: Loads and saves page defaults, log level and data directory as TOML

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/harper/datepage/internal/atomicfile"
	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/paginate"
)

// Config stores datepage configuration.
type Config struct {
	// Unit is the default page unit, e.g. "week" or "month".
	Unit string `toml:"unit,omitempty"`

	// Multiplier is how many units a page spans. Zero means 1.
	Multiplier int `toml:"multiplier,omitempty"`

	// Direction is "back" (default) or "forward".
	Direction string `toml:"direction,omitempty"`

	// WeekStart names the first day of a "week" page. Defaults to Sunday.
	WeekStart string `toml:"week_start,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `toml:"log_level,omitempty"`

	// DataDir holds the saved page state.
	// Supports ~ expansion. Defaults to ~/.local/share/datepage.
	DataDir string `toml:"data_dir,omitempty"`
}

// Keys lists the settable config keys.
func Keys() []string {
	return []string{"unit", "multiplier", "direction", "week_start", "log_level", "data_dir"}
}

// GetUnit returns the configured unit, defaulting to "week".
func (c *Config) GetUnit() string {
	if c.Unit == "" {
		return DefaultUnit
	}
	return c.Unit
}

// GetMultiplier returns the configured multiplier, defaulting to 1.
func (c *Config) GetMultiplier() int {
	if c.Multiplier == 0 {
		return DefaultMultiplier
	}
	return c.Multiplier
}

// GetDirection returns the parsed direction.
func (c *Config) GetDirection() (paginate.Direction, error) {
	return paginate.ParseDirection(c.Direction)
}

// GetWeekStart returns the parsed first day of the week.
func (c *Config) GetWeekStart() (time.Weekday, error) {
	if c.WeekStart == "" {
		return calendar.DefaultWeekStart, nil
	}
	return ParseWeekday(c.WeekStart)
}

// GetLogLevel returns the configured log level, defaulting to warn.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// Validate checks every set field.
func (c *Config) Validate() error {
	unit, err := calendar.ParseUnit(c.GetUnit())
	if err != nil {
		return fmt.Errorf("unit: %w", err)
	}
	if !unit.Bounded() {
		return fmt.Errorf("unit: %w: cannot page by %s", calendar.ErrUnsupportedUnit, unit)
	}
	if c.Multiplier < 0 {
		return fmt.Errorf("multiplier: %w: must be at least 1, got %d", calendar.ErrInvalidArgument, c.Multiplier)
	}
	if _, err := c.GetDirection(); err != nil {
		return fmt.Errorf("direction: %w", err)
	}
	if _, err := c.GetWeekStart(); err != nil {
		return fmt.Errorf("week_start: %w", err)
	}
	switch strings.ToLower(c.GetLogLevel()) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}
	return nil
}

// Set assigns a config key from its string form and validates the result.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "unit":
		next.Unit = value
	case "multiplier":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("multiplier must be a positive integer, got %q", value)
		}
		next.Multiplier = n
	case "direction":
		next.Direction = value
	case "week_start":
		next.WeekStart = value
	case "log_level":
		next.LogLevel = value
	case "data_dir":
		next.DataDir = value
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// ParseWeekday parses a weekday name such as "monday" or "mon".
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: weekday %q", calendar.ErrInvalidArgument, s)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "datepage", ConfigFilename)
}

// Load reads config from the default path. A missing file yields defaults.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads config from path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to the default path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes config to path atomically.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPerms); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return atomicfile.WriteFile(path, buf.Bytes(), 0o644)
}

// defaultDataDir returns the standard XDG data directory for datepage.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "datepage")
}
