// Package ioexport saves optimized layouts and optimization reports.
// All files are written atomically, so a failed export never leaves a
// partial file behind.
package ioexport

import (
	"context"

	"github.com/gnames/gndefrag/pkg/config"
	"github.com/gnames/gndefrag/pkg/lifecycle"
	"github.com/gnames/gndefrag/pkg/optimize"
)

type exporter struct {
	cfg        *config.Config
	layoutPath string
	reportPath string
}

// New creates an Exporter that writes the layout to layoutPath and, if
// reportPath is not empty, a report in the configured format.
func New(cfg *config.Config, layoutPath, reportPath string) lifecycle.Exporter {
	return &exporter{
		cfg:        cfg,
		layoutPath: layoutPath,
		reportPath: reportPath,
	}
}

// Export saves the outcome of an optimization run.
func (e *exporter) Export(ctx context.Context, out *optimize.Outcome) error {
	if out == nil {
		return optimize.NotOptimizedError()
	}
	if err := ctx.Err(); err != nil {
		return WriteLayoutError(e.layoutPath, err)
	}

	if err := WriteLayout(e.layoutPath, out); err != nil {
		return err
	}

	if e.reportPath == "" {
		return nil
	}
	return WriteReport(
		e.reportPath,
		e.cfg.Report.Format,
		out,
		e.cfg.Report.PlacementsNum,
	)
}
