package strategy

import (
	"cmp"
	"context"
	"math"
	"slices"

	"github.com/gnames/gndefrag/pkg/catalog"
)

// Weights of the object priority used by greedy and segmented
// strategies.
const (
	frequencyWeight = 0.7
	sizeWeight      = 0.3
)

type greedy struct{}

func (greedy) Algorithm() Algorithm {
	return Greedy
}

// Arrange sorts objects by descending priority. The priority combines
// access frequency normalized by the catalog maximum with a tent
// function that peaks for sizes in the middle of the size range.
// Equal priorities keep the load order.
func (greedy) Arrange(
	ctx context.Context,
	c *catalog.Catalog,
	progress ProgressFunc,
) (catalog.Layout, error) {
	tr := newTracker(progress)
	n := c.Len()
	if n == 0 {
		tr.done()
		return catalog.Layout{}, nil
	}

	maxFreq := math.Inf(-1)
	minSize, maxSize := math.Inf(1), math.Inf(-1)
	for i := range n {
		obj := c.Object(i)
		maxFreq = math.Max(maxFreq, obj.AccessFrequency)
		minSize = math.Min(minSize, obj.Size)
		maxSize = math.Max(maxSize, obj.Size)
	}
	sizeRange := maxSize - minSize

	prio := make([]float64, n)
	for i := range n {
		obj := c.Object(i)
		var normFreq float64
		if maxFreq > 0 {
			normFreq = obj.AccessFrequency / maxFreq
		}
		centrality := 1.0
		if sizeRange > 0 {
			centrality = tent((obj.Size - minSize) / sizeRange)
		}
		prio[i] = frequencyWeight*normFreq + sizeWeight*centrality
		tr.report(float64(i+1) / float64(n) * 50)
	}

	if err := ctx.Err(); err != nil {
		return nil, CanceledError(Greedy, err)
	}

	res := sortByPriority(catalog.Identity(n), prio)
	tr.done()
	return res, nil
}

// tent is 1 at 0.5 and falls linearly to 0 at 0 and 1.
func tent(x float64) float64 {
	return 1 - 2*math.Abs(x-0.5)
}

// sortByPriority sorts indices by descending priority, ties keep their
// relative order.
func sortByPriority(idx catalog.Layout, prio []float64) catalog.Layout {
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(prio[b], prio[a])
	})
	return idx
}
