// Package config defines generator configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading layers defaults, an optional YAML file and the environment.
// - External errors are wrapped with this package's sentinel errors.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// LogJSON switches log output to JSON lines.
	LogJSON bool `koanf:"log_json"`

	// DatabasePath points at the venue's SQLite database file.
	DatabasePath string `koanf:"database_path" validate:"required"`

	// OutputDir receives documents when the caller gives no explicit path.
	OutputDir string `koanf:"output_dir" validate:"required"`

	// MetricsFile, when set, receives a Prometheus textfile after each run.
	MetricsFile string `koanf:"metrics_file"`

	// Compress enables PDF stream compression.
	Compress bool `koanf:"compress"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		DatabasePath: "events.db",
		OutputDir:    ".",
		Compress:     true,
	}
}
