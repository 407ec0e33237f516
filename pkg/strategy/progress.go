package strategy

import "math"

// tracker forwards progress to ProgressFunc only when the whole percent
// value grows, so long loops do not flood the caller.
type tracker struct {
	fn   ProgressFunc
	last float64
}

func newTracker(fn ProgressFunc) *tracker {
	return &tracker{fn: fn}
}

func (t *tracker) report(percent float64) {
	if t.fn == nil {
		return
	}
	percent = math.Min(100, percent)
	if percent <= t.last {
		return
	}
	if percent < 100 && math.Floor(percent) == math.Floor(t.last) {
		return
	}
	t.last = percent
	t.fn(percent)
}

// done reports 100 unless it was reported already.
func (t *tracker) done() {
	t.report(100)
}
