package scope

// Transform maps visible samples to drawable coordinates. The horizontal
// extent spans TimeScale seconds and the vertical extent spans AmpScale
// amplitude units; timeInPx and ampInPx are the per-pixel counterparts,
// refreshed whenever a scale factor or the surface size changes. Stale
// per-pixel factors must never survive a resize, so the owning
// Oscilloscope calls refresh before the next primitive rebuild.
type Transform struct {
	TimeScale      float64 // seconds spanned by the full width
	AmpScale       float64 // amplitude units spanned by the full height
	AmpTranslation float64 // vertical offset in amplitude-axis units

	width, height int
	timeInPx      float64
	ampInPx       float64
}

// refresh recomputes the per-pixel factors for the current surface size.
func (t *Transform) refresh() {
	if t.width > 0 {
		t.timeInPx = t.TimeScale / float64(t.width)
	}
	if t.height > 0 {
		t.ampInPx = t.AmpScale / float64(t.height)
	}
}

// setSize records the surface size and refreshes the per-pixel factors.
func (t *Transform) setSize(w, h int) {
	t.width, t.height = w, h
	t.refresh()
}

// Size returns the surface size the transform was last refreshed for.
func (t *Transform) Size() (w, h int) { return t.width, t.height }

// timePx maps a sample time to a horizontal pixel coordinate, relative to
// the session's first sample time and the window's time translation.
func (t *Transform) timePx(time, firstTime, translation float64) float64 {
	if t.timeInPx == 0 {
		return 0
	}
	return (time - firstTime - translation) / t.timeInPx
}

// ampPx maps an amplitude to a vertical pixel coordinate with the origin
// at the bottom. The amplitude is normalized against the window extremes;
// a flat window normalizes against 1 (see Window.ampRangeOrOne).
func (t *Transform) ampPx(amp float64, w *Window) float64 {
	if t.ampInPx == 0 {
		return 0
	}
	return ((amp-w.MinAmp)/w.ampRangeOrOne() + t.AmpTranslation) / t.ampInPx
}

// planeX maps a horizontal pixel-center coordinate into [-1, 1] clip space.
func planeX(px float64, width int) float32 {
	return float32(2*(px+0.5)/float64(width) - 1)
}

// planeY maps a vertical pixel-center coordinate into [-1, 1] clip space.
func planeY(px float64, height int) float32 {
	return float32(2*(px+0.5)/float64(height) - 1)
}
