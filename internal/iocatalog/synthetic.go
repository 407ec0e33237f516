package iocatalog

import (
	"math/rand/v2"

	"github.com/gnames/gndefrag/pkg/catalog"
)

const (
	// SyntheticNum is the number of objects in a synthetic catalog.
	SyntheticNum = 100

	minSize = 0.1
	maxSize = 10.0
	minFreq = 0.1
	maxFreq = 1.0
)

// Synthetic creates a catalog of n objects with sizes uniformly
// distributed in [0.1, 10) and frequencies in [0.1, 1).
func Synthetic(
	r *rand.Rand,
	n int,
	diskSpace float64,
	tokenCount int,
) *catalog.Catalog {
	objs := make([]catalog.Object, n)
	for i := range objs {
		objs[i] = randomObject(r, i+1)
	}
	return catalog.New(objs, diskSpace, tokenCount)
}

func randomObject(r *rand.Rand, id int) catalog.Object {
	return catalog.Object{
		ID:              id,
		Size:            minSize + r.Float64()*(maxSize-minSize),
		AccessFrequency: minFreq + r.Float64()*(maxFreq-minFreq),
	}
}

// NewRand returns a PCG random generator. Zero seed gives a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
