// Package ioprogress shows progress of layout optimization in terminal.
package ioprogress

import (
	"io"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gndefrag/pkg/strategy"
)

// Bar is a progress bar that counts percents of an optimization run.
type Bar struct {
	mu  sync.Mutex
	bar *pb.ProgressBar
}

// New creates and starts a progress bar that writes to stderr.
func New(prefix string) *Bar {
	res := newBar(prefix, nil)
	res.bar.Start()
	return res
}

// NewWithWriter creates and starts a progress bar that writes to w.
func NewWithWriter(w io.Writer, prefix string) *Bar {
	res := newBar(prefix, w)
	res.bar.Start()
	return res
}

func newBar(prefix string, w io.Writer) *Bar {
	bar := pb.Full.New(100)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	if w != nil {
		bar.SetWriter(w)
	}
	return &Bar{bar: bar}
}

// Func returns a progress callback for a strategy.
func (b *Bar) Func() strategy.ProgressFunc {
	return b.Set
}

// Set moves the bar to the given percent. The bar finishes at 100.
func (b *Bar) Set(percent float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur := int64(math.Round(math.Max(0, math.Min(100, percent))))
	if cur < b.bar.Current() {
		return
	}
	b.bar.SetCurrent(cur)
	if cur == 100 {
		b.bar.Finish()
	}
}

// Current returns the last percent shown by the bar.
func (b *Bar) Current() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bar.Current()
}

// Finish stops the bar.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.bar.IsFinished() {
		b.bar.Finish()
	}
}

// Pool shows several bars at once, one per concurrent run.
type Pool struct {
	pool *pb.Pool
	bars []*Bar
}

// StartPool creates one bar for every prefix and starts them together.
func StartPool(prefixes ...string) (*Pool, error) {
	res := &Pool{bars: make([]*Bar, len(prefixes))}
	pbs := make([]*pb.ProgressBar, len(prefixes))
	for i, v := range prefixes {
		res.bars[i] = newBar(v, nil)
		pbs[i] = res.bars[i].bar
	}

	var err error
	res.pool, err = pb.StartPool(pbs...)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Bar returns the bar with index i.
func (p *Pool) Bar(i int) *Bar {
	return p.bars[i]
}

// Stop finishes all bars and stops the pool.
func (p *Pool) Stop() error {
	for _, v := range p.bars {
		v.Finish()
	}
	return p.pool.Stop()
}
