// Package config provides configuration management for GNdefrag.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Optimize: algorithm, disk_space, token_count, seed, synthetic_fallback
//   - Anneal: initial_temperature, cooling_rate, min_temperature, iterations
//   - Report: format, placements_num
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Optimize.SystemID (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNDEFRAG_ prefix with underscores for nesting:
//
//	GNDEFRAG_OPTIMIZE_ALGORITHM=annealing
//	GNDEFRAG_OPTIMIZE_DISK_SPACE=1000
//	GNDEFRAG_LOG_LEVEL=info
//	GNDEFRAG_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete GNdefrag configuration.
type Config struct {
	// Optimize contains settings of layout optimization.
	Optimize OptimizeConfig `mapstructure:"optimize" yaml:"optimize"`

	// Anneal contains parameters of simulated annealing.
	Anneal AnnealConfig `mapstructure:"anneal" yaml:"anneal"`

	// Report contains settings of optimization reports.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and log directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// OptimizeConfig contains settings of layout optimization.
type OptimizeConfig struct {
	// Algorithm is the default strategy.
	// Valid values: "greedy", "segmented", "annealing".
	Algorithm string `mapstructure:"algorithm" yaml:"algorithm"`

	// DiskSpace is the capacity budget used when the input does not
	// provide one.
	DiskSpace float64 `mapstructure:"disk_space" yaml:"disk_space"`

	// TokenCount is the token count used when the input does not provide
	// one.
	TokenCount int `mapstructure:"token_count" yaml:"token_count"`

	// Seed makes random choices reproducible. Zero means a random seed.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`

	// SyntheticFallback replaces an input without any valid objects with
	// 100 random objects. Default: false (empty input gives an empty
	// catalog).
	SyntheticFallback bool `mapstructure:"synthetic_fallback" yaml:"synthetic_fallback"`

	// SystemID filters objects of one storage system when the catalog
	// is read from SQLite. Empty means all objects.
	SystemID string `mapstructure:"system_id" yaml:"system_id"`
}

// AnnealConfig contains parameters of simulated annealing.
type AnnealConfig struct {
	InitialTemperature float64 `mapstructure:"initial_temperature" yaml:"initial_temperature"`
	CoolingRate        float64 `mapstructure:"cooling_rate"        yaml:"cooling_rate"`
	MinTemperature     float64 `mapstructure:"min_temperature"     yaml:"min_temperature"`
	Iterations         int     `mapstructure:"iterations"          yaml:"iterations"`
}

// ReportConfig contains settings of optimization reports.
type ReportConfig struct {
	// Format can be 'text', 'json' or 'yaml'.
	Format string `mapstructure:"format" yaml:"format"`

	// PlacementsNum is the number of first placements shown in reports.
	PlacementsNum int `mapstructure:"placements_num" yaml:"placements_num"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Optimize: OptimizeConfig{
			Algorithm:  "greedy",
			DiskSpace:  1000,
			TokenCount: 100,
		},
		Anneal: AnnealConfig{
			InitialTemperature: 100,
			CoolingRate:        0.95,
			MinTemperature:     0.1,
			Iterations:         100,
		},
		Report: ReportConfig{
			Format:        "text",
			PlacementsNum: 20,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
