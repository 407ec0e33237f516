package optimize

import (
	"context"
	"sync"

	"github.com/gnames/gndefrag/pkg/catalog"
	"github.com/gnames/gndefrag/pkg/strategy"
)

// Optimizer runs optimizations of one catalog and remembers the last
// completed run. Calls to Optimize are serialized.
type Optimizer struct {
	mu   sync.Mutex
	cat  *catalog.Catalog
	opts []strategy.Option
	last *Outcome
}

// NewOptimizer creates an Optimizer for the catalog. Options are passed
// to every strategy it creates.
func NewOptimizer(c *catalog.Catalog, opts ...strategy.Option) *Optimizer {
	return &Optimizer{cat: c, opts: opts}
}

// Catalog returns the catalog of the optimizer.
func (o *Optimizer) Catalog() *catalog.Catalog {
	return o.cat
}

// Optimize runs the algorithm and keeps its outcome. A failed run does
// not replace the outcome of a previous successful one.
func (o *Optimizer) Optimize(
	ctx context.Context,
	alg strategy.Algorithm,
	progress strategy.ProgressFunc,
) (Result, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := Run(ctx, o.cat, alg, progress, o.opts...)
	if err != nil {
		return Result{}, err
	}
	o.last = out
	return out.Result, nil
}

// Outcome returns the last completed run.
func (o *Optimizer) Outcome() (*Outcome, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.last == nil {
		return nil, NotOptimizedError()
	}
	return o.last, nil
}

// OptimizedLayout returns objects of the catalog with their positions in
// the last optimized layout.
func (o *Optimizer) OptimizedLayout() ([]Placement, error) {
	out, err := o.Outcome()
	if err != nil {
		return nil, err
	}
	return out.Placements(), nil
}
