// Package strategy provides algorithms that rearrange catalog objects
// into a new layout. Every strategy starts from the load order of the
// catalog and evaluates layouts only through the metric package.
package strategy

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/gnames/gndefrag/pkg/catalog"
)

// Algorithm enumerates the available strategies.
type Algorithm int

const (
	// UnknownAlgorithm is the zero value and does not select any
	// strategy.
	UnknownAlgorithm Algorithm = iota

	// Greedy sorts objects once by normalized frequency and size
	// centrality.
	Greedy

	// Segmented sorts objects by a simplified priority, in chunks for
	// large catalogs.
	Segmented

	// Annealing runs simulated annealing local search.
	Annealing
)

var algorithmNames = map[Algorithm]string{
	Greedy:    "greedy",
	Segmented: "segmented",
	Annealing: "annealing",
}

// aliases keep names used by the older command line interface.
var algorithmAliases = map[string]Algorithm{
	"greedy":    Greedy,
	"segmented": Segmented,
	"dp":        Segmented,
	"annealing": Annealing,
	"heuristic": Annealing,
}

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	if res, ok := algorithmNames[a]; ok {
		return res
	}
	return "unknown"
}

// ParseAlgorithm converts a name or an alias to Algorithm.
// Matching is case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if res, ok := algorithmAliases[s]; ok {
		return res, nil
	}
	return UnknownAlgorithm, UnknownAlgorithmError(s)
}

// Algorithms returns all known algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{Greedy, Segmented, Annealing}
}

// ProgressFunc receives completion percentage in [0,100]. It is called
// synchronously from the goroutine that runs the strategy, with
// non-decreasing values.
type ProgressFunc func(percent float64)

// Strategy produces a layout for a catalog.
type Strategy interface {
	// Algorithm returns the algorithm implemented by the strategy.
	Algorithm() Algorithm

	// Arrange returns a permutation of catalog indices. Progress can be
	// nil.
	Arrange(
		ctx context.Context,
		c *catalog.Catalog,
		progress ProgressFunc,
	) (catalog.Layout, error)
}

type settings struct {
	rnd    *rand.Rand
	anneal AnnealParams
}

// Option modifies strategy settings.
type Option func(*settings)

// OptSeed makes random choices of a strategy reproducible.
func OptSeed(seed uint64) Option {
	return func(s *settings) {
		s.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// OptRand sets the random source used by a strategy. Nil is ignored.
func OptRand(r *rand.Rand) Option {
	return func(s *settings) {
		if r != nil {
			s.rnd = r
		}
	}
}

// OptAnnealParams sets parameters of simulated annealing. Invalid
// values are replaced by defaults.
func OptAnnealParams(p AnnealParams) Option {
	return func(s *settings) {
		s.anneal = p.normalize()
	}
}

// New creates a Strategy for the given algorithm.
func New(alg Algorithm, opts ...Option) (Strategy, error) {
	s := settings{anneal: DefaultAnnealParams()}
	for _, opt := range opts {
		opt(&s)
	}

	switch alg {
	case Greedy:
		return greedy{}, nil
	case Segmented:
		return segmented{}, nil
	case Annealing:
		rnd := s.rnd
		if rnd == nil {
			rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		return &annealing{params: s.anneal, rnd: rnd}, nil
	default:
		return nil, UnknownAlgorithmError(alg.String())
	}
}
