// Package optimize runs a layout strategy on a catalog and measures the
// effect of the new layout.
package optimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gndefrag/pkg/catalog"
	"github.com/gnames/gndefrag/pkg/metric"
	"github.com/gnames/gndefrag/pkg/strategy"
	"github.com/google/uuid"
)

// Result describes one optimization run.
type Result struct {
	// RunID is a random identifier of the run.
	RunID string `json:"runId" yaml:"run_id"`

	// CatalogID is the fingerprint of the optimized catalog.
	CatalogID string `json:"catalogId" yaml:"catalog_id"`

	// Algorithm is the name of the strategy.
	Algorithm string `json:"algorithm" yaml:"algorithm"`

	BeforeFragmentation float64 `json:"beforeFragmentation" yaml:"before_fragmentation"`
	AfterFragmentation  float64 `json:"afterFragmentation"  yaml:"after_fragmentation"`
	BeforeScore         float64 `json:"beforeScore"         yaml:"before_score"`
	AfterScore          float64 `json:"afterScore"          yaml:"after_score"`

	// Improvement is the change of the score in percents of the score
	// before the run. It is 0 if the score before was 0.
	Improvement float64 `json:"improvement" yaml:"improvement"`

	// TimeCost is the wall-clock duration of the strategy in seconds.
	TimeCost float64 `json:"timeCost" yaml:"time_cost"`
}

// Placement is an object together with its 1-based position in the
// optimized layout.
type Placement struct {
	catalog.Object `yaml:",inline"`
	NewPosition    int `json:"newPosition" yaml:"new_position"`
}

// Outcome keeps the result of a run and the layout produced by it.
type Outcome struct {
	Result  Result
	Layout  catalog.Layout
	Catalog *catalog.Catalog
}

// Placements returns objects in the order of the optimized layout.
func (o *Outcome) Placements() []Placement {
	res := make([]Placement, len(o.Layout))
	for i, idx := range o.Layout {
		res[i] = Placement{
			Object:      o.Catalog.Object(idx),
			NewPosition: i + 1,
		}
	}
	return res
}

// Run optimizes the layout of the catalog with the given algorithm.
// Metrics of the load order are taken before the strategy starts, and
// metrics of the returned layout after it finishes. Progress is called
// synchronously and can be nil.
func Run(
	ctx context.Context,
	c *catalog.Catalog,
	alg strategy.Algorithm,
	progress strategy.ProgressFunc,
	opts ...strategy.Option,
) (*Outcome, error) {
	s, err := strategy.New(alg, opts...)
	if err != nil {
		return nil, err
	}

	n := c.Len()
	before := metric.Measure(c, catalog.Identity(n))

	slog.Info("Starting layout optimization",
		"algorithm", alg.String(), "objects", n)
	start := time.Now()
	layout, err := s.Arrange(ctx, c, progress)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	if !layout.IsPermutation(n) {
		return nil, InvalidLayoutError(alg, n, len(layout))
	}

	after := metric.Measure(c, layout)
	res := Result{
		RunID:               uuid.NewString(),
		CatalogID:           c.Fingerprint(),
		Algorithm:           alg.String(),
		BeforeFragmentation: before.Fragmentation,
		AfterFragmentation:  after.Fragmentation,
		BeforeScore:         before.Score,
		AfterScore:          after.Score,
		Improvement:         improvement(before.Score, after.Score),
		TimeCost:            elapsed.Seconds(),
	}

	slog.Info("Layout optimization finished",
		"algorithm", res.Algorithm,
		"run_id", res.RunID,
		"before_score", res.BeforeScore,
		"after_score", res.AfterScore,
		"improvement", res.Improvement,
		"duration", elapsed,
	)

	return &Outcome{Result: res, Layout: layout, Catalog: c}, nil
}

func improvement(before, after float64) float64 {
	if before <= 0 {
		return 0
	}
	return (after - before) / before * 100
}
