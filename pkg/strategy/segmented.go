package strategy

import (
	"context"

	"github.com/gnames/gndefrag/pkg/catalog"
)

const (
	// segmentThreshold is the number of objects above which the
	// catalog is processed in segments.
	segmentThreshold = 200

	// segmentSize is the number of objects in one segment.
	segmentSize = 100

	// sizeMidpoint is the size with the highest centrality in the
	// segmented priority.
	sizeMidpoint = 5.0
)

type segmented struct{}

func (segmented) Algorithm() Algorithm {
	return Segmented
}

// Arrange sorts objects by a local priority that uses raw access
// frequency and a fixed size midpoint. Large catalogs are sorted
// segment by segment, so objects never leave their segment.
func (segmented) Arrange(
	ctx context.Context,
	c *catalog.Catalog,
	progress ProgressFunc,
) (catalog.Layout, error) {
	tr := newTracker(progress)
	n := c.Len()
	prio := make([]float64, n)
	for i := range n {
		prio[i] = localPriority(c.Object(i))
	}

	if n <= segmentThreshold {
		tr.report(50)
		if err := ctx.Err(); err != nil {
			return nil, CanceledError(Segmented, err)
		}
		res := sortByPriority(catalog.Identity(n), prio)
		tr.done()
		return res, nil
	}

	res := catalog.Identity(n)
	for start := 0; start < n; start += segmentSize {
		if err := ctx.Err(); err != nil {
			return nil, CanceledError(Segmented, err)
		}
		end := min(start+segmentSize, n)
		sortByPriority(res[start:end], prio)
		tr.report(float64(end) / float64(n) * 100)
	}
	tr.done()
	return res, nil
}

func localPriority(obj catalog.Object) float64 {
	centrality := tent(obj.Size / (2 * sizeMidpoint))
	return frequencyWeight*obj.AccessFrequency + sizeWeight*centrality
}
