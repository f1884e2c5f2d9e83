// Package config provides centralized configuration management for the tool.
// It loads configuration from environment variables with sensible defaults
// and validates all settings on startup to fail fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables; the validate
// command's flags override the corresponding values per invocation.
type Config struct {
	Validate ValidateConfig
	Logging  LoggingConfig
}

// ValidateConfig holds validation pipeline settings.
type ValidateConfig struct {
	// KeyColumn is the designator column that selects and groups rows
	// (default: TORICO). Sheet templates that spell it TOROCO set this.
	KeyColumn string `env:"KEY_COLUMN" default:"TORICO"`

	// MaxRecipients is the largest allowed address count in one recipient
	// cell (default: 5). The rule is strictly greater-than.
	MaxRecipients int `env:"MAX_RECIPIENTS" default:"5"`

	// OutputSheet is the sheet name the filtered row set is saved to when
	// persistence is requested (default: Filtered).
	OutputSheet string `env:"OUTPUT_SHEET" default:"Filtered"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
