package scope

import (
	"math"

	"github.com/viterin/vek"
)

// Window is the visible sub-range of the signal, recomputed in full after
// every append. Begin and End are inclusive absolute sample indices;
// TimeTranslation shifts the time axis so the window's left edge maps to
// zero once the signal has outgrown the visible span.
type Window struct {
	Begin, End      int
	TimeTranslation float64
	MinAmp, MaxAmp  float64
	AmpRange        float64
}

// advance recomputes the window after a sample has been appended.
// timeScale is the number of seconds spanned by the full horizontal extent.
//
// The begin index is estimated from the mean sample period rather than
// found by a binary search over timestamps. The estimate assumes roughly
// uniform sampling; for a live display the resulting windowing error is
// visually imperceptible and the recompute stays O(1) before the extremes
// scan.
func (w *Window) advance(sig *Signal, timeScale float64) {
	last := sig.Total() - 1
	lastTime := sig.At(last).Time
	signalTime := lastTime - sig.First().Time

	if subTime := signalTime - timeScale; subTime > 0 {
		meanPeriod := signalTime / float64(sig.Total())
		index := int(math.Floor(subTime/meanPeriod)) - 1
		if index < 0 {
			index = 0
		}
		if index > last {
			index = last
		}
		if index < sig.Dropped() {
			index = sig.Dropped()
		}
		w.Begin = index
		w.TimeTranslation = subTime
	}
	w.End = last

	amps := sig.AmpRange(w.Begin, w.End)
	w.MinAmp = vek.Min(amps)
	w.MaxAmp = vek.Max(amps)
	w.AmpRange = w.MaxAmp - w.MinAmp
}

// reset returns the window to its initial empty state.
func (w *Window) reset() { *w = Window{} }

// Count returns the number of visible samples.
func (w *Window) Count() int {
	if w.End < w.Begin {
		return 0
	}
	return w.End - w.Begin + 1
}

// ampRangeOrOne substitutes 1 for a zero amplitude range so a flat signal
// renders as a flat translated line instead of dividing by zero.
func (w *Window) ampRangeOrOne() float64 {
	if w.AmpRange == 0 {
		return 1
	}
	return w.AmpRange
}
