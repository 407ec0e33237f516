package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Optimize.SystemID).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	var f float64

	s = c.Optimize.Algorithm
	if s != "" {
		res = append(res, OptOptimizeAlgorithm(s))
	}
	f = c.Optimize.DiskSpace
	if f > 0 {
		res = append(res, OptOptimizeDiskSpace(f))
	}
	i = c.Optimize.TokenCount
	if i > 0 {
		res = append(res, OptOptimizeTokenCount(i))
	}
	if c.Optimize.Seed > 0 {
		res = append(res, OptOptimizeSeed(c.Optimize.Seed))
	}
	if c.Optimize.SyntheticFallback {
		res = append(res, OptOptimizeSyntheticFallback(true))
	}

	f = c.Anneal.InitialTemperature
	if f > 0 {
		res = append(res, OptAnnealInitialTemperature(f))
	}
	f = c.Anneal.CoolingRate
	if f > 0 {
		res = append(res, OptAnnealCoolingRate(f))
	}
	f = c.Anneal.MinTemperature
	if f > 0 {
		res = append(res, OptAnnealMinTemperature(f))
	}
	i = c.Anneal.Iterations
	if i > 0 {
		res = append(res, OptAnnealIterations(i))
	}

	s = c.Report.Format
	if s != "" {
		res = append(res, OptReportFormat(s))
	}
	i = c.Report.PlacementsNum
	if i > 0 {
		res = append(res, OptReportPlacementsNum(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidFloat(name string, f float64) bool {
	res := f > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %g", name, f)
	}
	return res
}

func isValidFraction(name string, f float64) bool {
	res := f > 0 && f < 1
	if !res {
		gn.Warn("<em>%s</em> has to be between 0 and 1, ignoring %g", name, f)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Report.Format":   {"text": s, "json": s, "yaml": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
