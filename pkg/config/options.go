package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptOptimizeAlgorithm sets the default layout strategy.
// Known values are "greedy", "segmented", "annealing" and their aliases
// "dp" and "heuristic". The name is kept as is, so an unknown algorithm
// fails when the strategy is created instead of falling back to the
// default one.
func OptOptimizeAlgorithm(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidString("Algorithm", s) {
			c.Optimize.Algorithm = s
		}
	}
}

// OptOptimizeDiskSpace sets the default capacity budget.
func OptOptimizeDiskSpace(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Disk Space", f) {
			c.Optimize.DiskSpace = f
		}
	}
}

// OptOptimizeTokenCount sets the default token count.
func OptOptimizeTokenCount(i int) Option {
	return func(c *Config) {
		if isValidInt("Token Count", i) {
			c.Optimize.TokenCount = i
		}
	}
}

// OptOptimizeSeed sets the seed of random choices. Zero restores a
// random seed.
func OptOptimizeSeed(i uint64) Option {
	return func(c *Config) {
		c.Optimize.Seed = i
	}
}

// OptOptimizeSyntheticFallback enables generation of random objects
// when the input has no valid objects.
func OptOptimizeSyntheticFallback(b bool) Option {
	return func(c *Config) {
		c.Optimize.SyntheticFallback = b
	}
}

// OptOptimizeSystemID sets the storage system to read from SQLite.
// Runtime-only field - not in ToOptions().
func OptOptimizeSystemID(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("System ID", s) {
			c.Optimize.SystemID = s
		}
	}
}

// OptAnnealInitialTemperature sets the starting temperature of
// simulated annealing.
func OptAnnealInitialTemperature(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Initial Temperature", f) {
			c.Anneal.InitialTemperature = f
		}
	}
}

// OptAnnealCoolingRate sets the cooling factor, it must be in (0,1).
func OptAnnealCoolingRate(f float64) Option {
	return func(c *Config) {
		if isValidFraction("Cooling Rate", f) {
			c.Anneal.CoolingRate = f
		}
	}
}

// OptAnnealMinTemperature sets the temperature floor.
func OptAnnealMinTemperature(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Min Temperature", f) {
			c.Anneal.MinTemperature = f
		}
	}
}

// OptAnnealIterations sets the iteration budget.
func OptAnnealIterations(i int) Option {
	return func(c *Config) {
		if isValidInt("Iterations", i) {
			c.Anneal.Iterations = i
		}
	}
}

// OptReportFormat sets the report format.
// Valid values: "text", "json", "yaml".
func OptReportFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Report.Format", s) {
			c.Report.Format = s
		}
	}
}

// OptReportPlacementsNum sets how many placements are shown in reports.
func OptReportPlacementsNum(i int) Option {
	return func(c *Config) {
		if isValidInt("Placements Number", i) {
			c.Report.PlacementsNum = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
