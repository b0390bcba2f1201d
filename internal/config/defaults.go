// ABOUTME: Centralized configuration defaults for datepage
// ABOUTME: Contains file names, display layouts and page defaults

package config

// Page defaults
const (
	DefaultUnit       = "week"
	DefaultMultiplier = 1
)

// Display settings
const (
	DateLayout      = "2006-01-02"
	DateTimeLayout  = "2006-01-02 15:04:05.000 MST"
	DayLayout       = "Mon 02 Jan"
	SeparatorWidth  = 60
	DefaultLogLevel = "warn"
)

// Storage settings
const (
	ConfigFilename  = "config.toml"
	StateFilename   = "state.yaml"
	DefaultDirPerms = 0755
)
