package strategy

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/gnames/gndefrag/pkg/catalog"
	"github.com/gnames/gndefrag/pkg/metric"
)

// AnnealParams configure simulated annealing.
type AnnealParams struct {
	// InitialTemperature is the starting temperature.
	InitialTemperature float64 `mapstructure:"initial_temperature" yaml:"initial_temperature"`

	// CoolingRate multiplies the temperature after every iteration,
	// it has to be in (0,1).
	CoolingRate float64 `mapstructure:"cooling_rate" yaml:"cooling_rate"`

	// MinTemperature stops the search when the temperature drops below
	// it.
	MinTemperature float64 `mapstructure:"min_temperature" yaml:"min_temperature"`

	// Iterations is the maximum number of iterations.
	Iterations int `mapstructure:"iterations" yaml:"iterations"`
}

// DefaultAnnealParams returns parameters used when nothing else is set.
func DefaultAnnealParams() AnnealParams {
	return AnnealParams{
		InitialTemperature: 100,
		CoolingRate:        0.95,
		MinTemperature:     0.1,
		Iterations:         100,
	}
}

func (p AnnealParams) normalize() AnnealParams {
	def := DefaultAnnealParams()
	if p.InitialTemperature <= 0 {
		p.InitialTemperature = def.InitialTemperature
	}
	if p.CoolingRate <= 0 || p.CoolingRate >= 1 {
		p.CoolingRate = def.CoolingRate
	}
	if p.MinTemperature <= 0 {
		p.MinTemperature = def.MinTemperature
	}
	if p.Iterations <= 0 {
		p.Iterations = def.Iterations
	}
	return p
}

type operator int

const (
	opSwap operator = iota
	opInsert
	opReverse
	opsNum
)

type annealing struct {
	params AnnealParams
	rnd    *rand.Rand
}

func (*annealing) Algorithm() Algorithm {
	return Annealing
}

// Arrange runs simulated annealing from the load order and returns the
// best layout found. A worse candidate is accepted with probability
// exp(delta/T). The best layout changes only when a candidate is
// strictly better than the current one.
func (a *annealing) Arrange(
	ctx context.Context,
	c *catalog.Catalog,
	progress ProgressFunc,
) (catalog.Layout, error) {
	n := c.Len()
	current := catalog.Identity(n)
	if n < 2 {
		if progress != nil {
			progress(100)
		}
		return current, nil
	}

	p := a.params
	currentScore := metric.PerformanceScore(c, current)
	best, bestScore := current.Clone(), currentScore
	temp := p.InitialTemperature

	var percent float64
	for i := range p.Iterations {
		if err := ctx.Err(); err != nil {
			return nil, CanceledError(Annealing, err)
		}
		percent = float64(i+1) * 100 / float64(p.Iterations)
		if progress != nil {
			progress(percent)
		}

		candidate := a.neighbor(current)
		score := metric.PerformanceScore(c, candidate)

		if score > currentScore {
			current, currentScore = candidate, score
			if currentScore > bestScore {
				best, bestScore = current.Clone(), currentScore
			}
		} else {
			prob := math.Exp((score - currentScore) / temp)
			if a.rnd.Float64() < prob {
				current, currentScore = candidate, score
			}
		}

		temp *= p.CoolingRate
		if temp < p.MinTemperature {
			break
		}
	}

	// stopped by the temperature floor
	if progress != nil && percent < 100 {
		progress(100)
	}
	return best, nil
}

// neighbor returns a modified copy of l. The length of l must be at
// least 2.
func (a *annealing) neighbor(l catalog.Layout) catalog.Layout {
	res := l.Clone()
	n := len(res)

	switch operator(a.rnd.IntN(int(opsNum))) {
	case opSwap:
		i := a.rnd.IntN(n)
		j := a.rnd.IntN(n - 1)
		if j >= i {
			j++
		}
		res[i], res[j] = res[j], res[i]
	case opInsert:
		from := a.rnd.IntN(n)
		to := a.rnd.IntN(n)
		if from != to {
			v := res[from]
			res = slices.Delete(res, from, from+1)
			res = slices.Insert(res, to, v)
		}
	case opReverse:
		i := a.rnd.IntN(n)
		j := a.rnd.IntN(n)
		if i > j {
			i, j = j, i
		}
		slices.Reverse(res[i : j+1])
	}
	return res
}
