/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/internal/iofs"
	"github.com/gnames/gndefrag/internal/iologger"
	gndefrag "github.com/gnames/gndefrag/pkg"
	"github.com/gnames/gndefrag/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd creates the base command with all subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			gndefrag.Version, gndefrag.Build),
		Use:   "gndefrag",
		Short: "GNdefrag rearranges storage objects to reduce fragmentation",
		Long: `GNdefrag reads a catalog of storage objects and finds a new order
of the objects on disk that lowers fragmentation and raises the
performance score of the layout.

Commands:
  - optimize: optimize a catalog and save the new layout
  - compare:  run all algorithms on the same catalog
  - stats:    show statistics of a catalog
  - generate: create a random test catalog

Algorithms:
  - greedy:    sort by frequency and size centrality
  - segmented: sort chunks of 100 objects locally (alias: dp)
  - annealing: simulated annealing (alias: heuristic)

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNDEFRAG_*)
  3. Config file (~/.config/gndefrag/config.yaml)
  4. Built-in defaults`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gndefrag version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gndefrag")

	rootCmd.AddCommand(
		getOptimizeCmd(),
		getCompareCmd(),
		getStatsCmd(),
		getGenerateCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	_ = iologger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound one by one, so it is clear which of
	// them are allowed. They match the fields of config.ToOptions().
	v.SetEnvPrefix("GNDEFRAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Optimize configuration
	v.BindEnv("optimize.algorithm", "GNDEFRAG_OPTIMIZE_ALGORITHM")
	v.BindEnv("optimize.disk_space", "GNDEFRAG_OPTIMIZE_DISK_SPACE")
	v.BindEnv("optimize.token_count", "GNDEFRAG_OPTIMIZE_TOKEN_COUNT")
	v.BindEnv("optimize.seed", "GNDEFRAG_OPTIMIZE_SEED")
	v.BindEnv("optimize.synthetic_fallback", "GNDEFRAG_OPTIMIZE_SYNTHETIC_FALLBACK")

	// Annealing configuration
	v.BindEnv("anneal.initial_temperature", "GNDEFRAG_ANNEAL_INITIAL_TEMPERATURE")
	v.BindEnv("anneal.cooling_rate", "GNDEFRAG_ANNEAL_COOLING_RATE")
	v.BindEnv("anneal.min_temperature", "GNDEFRAG_ANNEAL_MIN_TEMPERATURE")
	v.BindEnv("anneal.iterations", "GNDEFRAG_ANNEAL_ITERATIONS")

	// Report configuration
	v.BindEnv("report.format", "GNDEFRAG_REPORT_FORMAT")
	v.BindEnv("report.placements_num", "GNDEFRAG_REPORT_PLACEMENTS_NUM")

	// Log configuration
	v.BindEnv("log.level", "GNDEFRAG_LOG_LEVEL")
	v.BindEnv("log.format", "GNDEFRAG_LOG_FORMAT")
	v.BindEnv("log.destination", "GNDEFRAG_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNDEFRAG_JOBS_NUMBER")

	v.AutomaticEnv()
}
