/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/internal/iocatalog"
	"github.com/gnames/gndefrag/internal/ioexport"
	"github.com/gnames/gndefrag/internal/ioprogress"
	"github.com/gnames/gndefrag/pkg/catalog"
	"github.com/gnames/gndefrag/pkg/optimize"
	"github.com/gnames/gndefrag/pkg/strategy"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// getCompareCmd returns the compare command.
func getCompareCmd() *cobra.Command {
	var quiet bool

	compareCmd := &cobra.Command{
		Use:   "compare <input>",
		Short: "Compare all algorithms on the same catalog",
		Long: `Run greedy, segmented and annealing algorithms on the same catalog
concurrently and show their scores side by side. Layouts are not saved.

Examples:
  gndefrag compare data.in
  gndefrag compare --seed 42 -f json data.in`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCompare(cmd, args[0], quiet)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	compareCmd.Flags().StringP("format", "f", "",
		"output format: text, json or yaml")
	compareCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"do not show progress bars")
	catalogFlags(compareCmd)
	strategyFlags(compareCmd)

	return compareCmd
}

func runCompare(cmd *cobra.Command, input string, quiet bool) error {
	cfg.Update(flagOptions(cmd))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cat, err := iocatalog.New(cfg, input).Load(ctx)
	if err != nil {
		return err
	}

	var pool *ioprogress.Pool
	algs := strategy.Algorithms()
	if !quiet {
		prefixes := make([]string, len(algs))
		for i, v := range algs {
			prefixes[i] = fmt.Sprintf("%-10s ", v.String()+":")
		}
		if pool, err = ioprogress.StartPool(prefixes...); err != nil {
			slog.Warn("Cannot show progress bars", "error", err)
			pool = nil
		}
	}

	var progress func(i int) strategy.ProgressFunc
	if pool != nil {
		progress = func(i int) strategy.ProgressFunc {
			return pool.Bar(i).Func()
		}
	}

	res, err := compare(ctx, cat, algs, cfg.JobsNumber, progress,
		strategyOptions(cfg)...)
	if pool != nil {
		_ = pool.Stop()
	}
	if err != nil {
		return err
	}

	return encodeComparison(os.Stdout, cfg.Report.Format, res)
}

// compare runs the algorithms concurrently on the same catalog and
// returns results in the order of algs.
func compare(
	ctx context.Context,
	cat *catalog.Catalog,
	algs []strategy.Algorithm,
	jobs int,
	progress func(i int) strategy.ProgressFunc,
	opts ...strategy.Option,
) ([]optimize.Result, error) {
	res := make([]optimize.Result, len(algs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, jobs))
	for i, alg := range algs {
		g.Go(func() error {
			var fn strategy.ProgressFunc
			if progress != nil {
				fn = progress(i)
			}
			out, err := optimize.Run(ctx, cat, alg, fn, opts...)
			if err != nil {
				return err
			}
			res[i] = out.Result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func encodeComparison(
	w io.Writer,
	format string,
	res []optimize.Result,
) error {
	switch strings.ToLower(format) {
	case ioexport.JSON:
		out, err := gnfmt.GNjson{Pretty: true}.Encode(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case ioexport.YAML:
		out, err := yaml.Marshal(res)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-10s %12s %12s %12s %12s %10s\n",
		"algorithm", "frag before", "frag after",
		"score before", "score after", "time")
	best := -1
	for i, v := range res {
		fmt.Fprintf(&sb, "%-10s %11.2f%% %11.2f%% %12.2f %12.2f %10s\n",
			v.Algorithm, v.BeforeFragmentation, v.AfterFragmentation,
			v.BeforeScore, v.AfterScore, gnfmt.TimeString(v.TimeCost))
		if best < 0 || v.AfterScore > res[best].AfterScore {
			best = i
		}
	}
	if best >= 0 {
		fmt.Fprintf(&sb, "\nBest score: %s (%.2f, improvement %.2f%%)\n",
			res[best].Algorithm, res[best].AfterScore, res[best].Improvement)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
