/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/internal/iocatalog"
	"github.com/gnames/gndefrag/internal/ioexport"
	"github.com/gnames/gndefrag/internal/ioprogress"
	"github.com/gnames/gndefrag/pkg/optimize"
	"github.com/gnames/gndefrag/pkg/strategy"
	"github.com/gnames/gnlib"
	"github.com/spf13/cobra"
)

// getOptimizeCmd returns the optimize command.
func getOptimizeCmd() *cobra.Command {
	var (
		reportPath string
		verbose    bool
		quiet      bool
	)

	optimizeCmd := &cobra.Command{
		Use:   "optimize <input> <output>",
		Short: "Optimize layout of storage objects",
		Long: `Optimize the order of storage objects from the input catalog and
save ids of the objects in the new order to the output file, one id per
line.

The input is a text file or a SQLite database (.db, .sqlite, .sqlite3).
The first line of a text file contains disk space and token count, every
other line has an object id, size and access frequency:

  1000 100
  1 2.50 0.9000
  2 7.50 0.1000

SQLite databases must have a storage_objects table with object_id, size,
access_frequency and original_position columns.

Examples:
  # Optimize with the default algorithm
  gndefrag optimize data.in data.out

  # Use simulated annealing with a fixed seed
  gndefrag optimize -a annealing --seed 42 data.in data.out

  # Save a YAML report and show first placements
  gndefrag optimize -r report.yaml -f yaml -v data.in data.out`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runOptimize(cmd, args[0], args[1], reportPath, verbose, quiet)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	optimizeCmd.Flags().StringP("algorithm", "a", "",
		"greedy, segmented (dp) or annealing (heuristic)")
	optimizeCmd.Flags().StringVarP(&reportPath, "report", "r", "",
		"save optimization report to the file")
	optimizeCmd.Flags().StringP("format", "f", "",
		"report format: text, json or yaml")
	optimizeCmd.Flags().IntP("placements", "p", 0,
		"number of first placements to show")
	optimizeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"show first placements of the optimized layout")
	optimizeCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"do not show progress bar")
	catalogFlags(optimizeCmd)
	strategyFlags(optimizeCmd)

	return optimizeCmd
}

func runOptimize(
	cmd *cobra.Command,
	input, output, reportPath string,
	verbose, quiet bool,
) error {
	cfg.Update(flagOptions(cmd))

	alg, err := strategy.ParseAlgorithm(cfg.Optimize.Algorithm)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gn.Info("Loading catalog <em>%s</em>", input)
	cat, err := iocatalog.New(cfg, input).Load(ctx)
	if err != nil {
		return err
	}
	printStats(cat.Stats())

	o := optimize.NewOptimizer(cat, strategyOptions(cfg)...)

	gn.Info("Optimizing layout with <em>%s</em> algorithm", alg)
	var bar *ioprogress.Bar
	var progress strategy.ProgressFunc
	if !quiet {
		bar = ioprogress.New(alg.String() + ": ")
		progress = bar.Func()
	}
	_, err = o.Optimize(ctx, alg, progress)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	out, err := o.Outcome()
	if err != nil {
		return err
	}

	placementsNum := 0
	if verbose {
		placementsNum = cfg.Report.PlacementsNum
	}
	rep := ioexport.NewReport(out, placementsNum)
	if err = ioexport.Encode(os.Stdout, ioexport.Text, rep); err != nil {
		return err
	}
	if verbose && cat.Len() > placementsNum {
		fmt.Println("...")
	}

	err = ioexport.New(cfg, output, reportPath).Export(ctx, out)
	if err != nil {
		return err
	}

	msg := "\n<em>Optimized layout is saved to %s</em>\n"
	vars := []any{output}
	if reportPath != "" {
		msg += "Report is saved to <em>%s</em>\n"
		vars = append(vars, reportPath)
	}
	fmt.Println(gnlib.FormatMessage(msg, vars))

	return nil
}
