// Package metric scores layouts of a catalog. All functions are pure and
// return percentages in the [0,100] range.
package metric

import (
	"math"

	"github.com/gnames/gndefrag/pkg/catalog"
)

// Weights of the composite performance score.
const (
	FragmentationWeight = 0.4
	AccessWeight        = 0.3
	SpaceWeight         = 0.2
	LocalityWeight      = 0.1
)

// Snapshot keeps all metrics of one layout.
type Snapshot struct {
	Fragmentation    float64 `json:"fragmentation"    yaml:"fragmentation"`
	AccessEfficiency float64 `json:"accessEfficiency" yaml:"access_efficiency"`
	SpaceUtilization float64 `json:"spaceUtilization" yaml:"space_utilization"`
	Locality         float64 `json:"locality"         yaml:"locality"`
	Score            float64 `json:"score"            yaml:"score"`
}

// Measure calculates all metrics of the layout.
func Measure(c *catalog.Catalog, l catalog.Layout) Snapshot {
	res := Snapshot{
		Fragmentation:    Fragmentation(c, l),
		AccessEfficiency: AccessEfficiency(c, l),
		SpaceUtilization: SpaceUtilization(c, l),
		Locality:         Locality(c, l),
	}
	res.Score = combine(res)
	if len(l) == 0 || c.Len() == 0 {
		res.Score = 0
	}
	return res
}

// Fragmentation is the mean distance between original positions of
// adjacent objects, normalized by the number of objects.
func Fragmentation(c *catalog.Catalog, l catalog.Layout) float64 {
	if len(l) < 2 || c.Len() == 0 {
		return 0
	}

	n := float64(c.Len())
	var sum float64
	for i := 0; i < len(l)-1; i++ {
		a := c.Object(l[i]).OriginalPosition
		b := c.Object(l[i+1]).OriginalPosition
		sum += math.Abs(float64(a-b)) / n
	}
	return sum / float64(len(l)-1) * 100
}

// AccessEfficiency rewards placing frequently accessed objects early.
func AccessEfficiency(c *catalog.Catalog, l catalog.Layout) float64 {
	if len(l) == 0 || c.Len() == 0 {
		return 0
	}

	n := float64(len(l))
	var total, weight float64
	for i, idx := range l {
		w := c.Object(idx).AccessFrequency
		total += (1 - float64(i)/n) * w
		weight += w
	}
	if weight <= 0 {
		return 0
	}
	return total / weight * 100
}

// SpaceUtilization is the share of disk space taken by the objects of
// the layout, saturating at 100.
func SpaceUtilization(c *catalog.Catalog, l catalog.Layout) float64 {
	if len(l) == 0 || c.Len() == 0 || c.DiskSpace() <= 0 {
		return 0
	}

	var used float64
	for _, idx := range l {
		used += c.Object(idx).Size
	}
	return math.Min(1, used/c.DiskSpace()) * 100
}

// Locality rewards neighbours with similar access frequency.
func Locality(c *catalog.Catalog, l catalog.Layout) float64 {
	if len(l) < 2 || c.Len() == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < len(l)-1; i++ {
		a := c.Object(l[i]).AccessFrequency
		b := c.Object(l[i+1]).AccessFrequency
		sum += 1 - math.Min(1, math.Abs(a-b))
	}
	return sum / float64(len(l)-1) * 100
}

// PerformanceScore is the weighted blend of inverse fragmentation,
// access efficiency, space utilization and locality.
func PerformanceScore(c *catalog.Catalog, l catalog.Layout) float64 {
	return Measure(c, l).Score
}

func combine(s Snapshot) float64 {
	res := FragmentationWeight*(100-s.Fragmentation) +
		AccessWeight*s.AccessEfficiency +
		SpaceWeight*s.SpaceUtilization +
		LocalityWeight*s.Locality
	return math.Max(0, math.Min(100, res))
}
