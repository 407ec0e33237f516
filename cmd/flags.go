package cmd

import (
	"github.com/gnames/gndefrag/pkg/config"
	"github.com/gnames/gndefrag/pkg/strategy"
	"github.com/spf13/cobra"
)

// catalogFlags adds flags that change how a catalog is read.
func catalogFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("disk-space", "d", 0,
		"disk space if the input has no header (default from config)")
	cmd.Flags().IntP("token-count", "t", 0,
		"token count if the input has no header (default from config)")
	cmd.Flags().Bool("synthetic", false,
		"use 100 random objects if the input has no valid objects")
	cmd.Flags().String("system-id", "",
		"read objects of one storage system from SQLite input")
}

// strategyFlags adds flags that change strategies.
func strategyFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0,
		"seed of random choices, 0 means a random seed")
	cmd.Flags().Int("iterations", 0,
		"iterations of simulated annealing (default from config)")
	cmd.Flags().IntP("jobs", "j", 0,
		"number of concurrent runs (default from config)")
}

// flagOptions converts flags changed by a user to config options.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fl := cmd.Flags()
	changed := func(name string) bool {
		f := fl.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("algorithm") {
		s, _ := fl.GetString("algorithm")
		res = append(res, config.OptOptimizeAlgorithm(s))
	}
	if changed("disk-space") {
		f, _ := fl.GetFloat64("disk-space")
		res = append(res, config.OptOptimizeDiskSpace(f))
	}
	if changed("token-count") {
		i, _ := fl.GetInt("token-count")
		res = append(res, config.OptOptimizeTokenCount(i))
	}
	if changed("synthetic") {
		b, _ := fl.GetBool("synthetic")
		res = append(res, config.OptOptimizeSyntheticFallback(b))
	}
	if changed("system-id") {
		s, _ := fl.GetString("system-id")
		res = append(res, config.OptOptimizeSystemID(s))
	}
	if changed("seed") {
		i, _ := fl.GetUint64("seed")
		res = append(res, config.OptOptimizeSeed(i))
	}
	if changed("iterations") {
		i, _ := fl.GetInt("iterations")
		res = append(res, config.OptAnnealIterations(i))
	}
	if changed("jobs") {
		i, _ := fl.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	if changed("format") {
		s, _ := fl.GetString("format")
		res = append(res, config.OptReportFormat(s))
	}
	if changed("placements") {
		i, _ := fl.GetInt("placements")
		res = append(res, config.OptReportPlacementsNum(i))
	}
	return res
}

// strategyOptions creates strategy options from the configuration.
func strategyOptions(cfg *config.Config) []strategy.Option {
	a := cfg.Anneal
	res := []strategy.Option{
		strategy.OptAnnealParams(strategy.AnnealParams{
			InitialTemperature: a.InitialTemperature,
			CoolingRate:        a.CoolingRate,
			MinTemperature:     a.MinTemperature,
			Iterations:         a.Iterations,
		}),
	}
	if cfg.Optimize.Seed != 0 {
		res = append(res, strategy.OptSeed(cfg.Optimize.Seed))
	}
	return res
}
