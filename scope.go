package scope

import "sync"

// Oscilloscope is the core of the trace display. It owns the sample
// history, the visible window, the coordinate transform and the cached
// drawable primitive, all behind a single mutex: at most one of append,
// clear, setter or frame snapshot runs at a time. The coarse lock favors
// simplicity over contention control, which is acceptable because sample
// rates are low relative to frame rates.
type Oscilloscope struct {
	mu      sync.Mutex
	sig     Signal
	win     Window
	tr      Transform
	frame   Frame
	style   Style
	active  bool
	bounded bool
	strict  bool
}

// New creates an Oscilloscope with the default configuration: a 10 second
// horizontal span, a one-unit vertical span and the default style. The
// instance is active and empty.
func New(opts ...Option) *Oscilloscope {
	o := &Oscilloscope{
		tr:     Transform{TimeScale: 10, AmpScale: 1},
		style:  DefaultStyle(),
		active: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.tr.refresh()
	return o
}

// Append adds one sample to the history, recomputes the visible window and
// rebuilds the drawable primitive. With strict ordering enabled it rejects
// samples whose time precedes the previous one; otherwise ordering is not
// validated and a non-monotonic series produces a rendering artifact, not
// an error.
func (o *Oscilloscope) Append(smp Sample) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.strict && o.sig.Len() > 0 && smp.Time < o.sig.Last().Time {
		return ErrInvalidSampleOrder
	}
	o.sig.Append(smp)
	o.win.advance(&o.sig, o.tr.TimeScale)
	if o.bounded {
		o.sig.TrimBefore(o.win.Begin)
	}
	o.frame.rebuild(&o.sig, &o.win, &o.tr)
	return nil
}

// SetActive toggles the display. Activating resets all core state
// atomically: the sample history, the window and the cached primitive.
// Deactivating touches no data, so the last-built primitive keeps
// rendering unchanged. This is the only reset path.
func (o *Oscilloscope) SetActive(enabled bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if enabled {
		o.sig.Clear()
		o.win.reset()
		o.frame.reset()
		Logger().Info("scope: reset")
	}
	o.active = enabled
}

// Active reports whether the display is active.
func (o *Oscilloscope) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

// Resize records a new surface size, refreshes the per-pixel scale factors
// and rebuilds the primitive so no stale factor survives into the next
// draw. Surface-resize callbacks must route here before painting again.
func (o *Oscilloscope) Resize(width, height int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if width <= 0 || height <= 0 {
		Logger().Warn("scope: ignoring degenerate surface size", "width", width, "height", height)
		return
	}
	o.tr.setSize(width, height)
	o.frame.rebuild(&o.sig, &o.win, &o.tr)
}

// SetTimeScale sets the seconds spanned by the full horizontal extent.
// Takes effect on the next recompute; no redraw is forced.
func (o *Oscilloscope) SetTimeScale(seconds float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if seconds <= 0 {
		return
	}
	o.tr.TimeScale = seconds
	o.tr.refresh()
}

// SetAmpScale sets the amplitude units spanned by the full vertical
// extent. Takes effect on the next recompute; no redraw is forced.
func (o *Oscilloscope) SetAmpScale(units float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if units <= 0 {
		return
	}
	o.tr.AmpScale = units
	o.tr.refresh()
}

// SetAmpTranslation sets the vertical offset in amplitude-axis units.
func (o *Oscilloscope) SetAmpTranslation(units float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tr.AmpTranslation = units
}

// SetStrokeColor sets the trace color for subsequent frames.
func (o *Oscilloscope) SetStrokeColor(c [4]uint8) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.style.Stroke.R, o.style.Stroke.G, o.style.Stroke.B, o.style.Stroke.A = c[0], c[1], c[2], c[3]
}

// SetStrokeWidth sets the trace width in pixels for subsequent frames.
// Non-positive widths are ignored.
func (o *Oscilloscope) SetStrokeWidth(px float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if px > 0 {
		o.style.StrokeWidth = px
	}
}

// SetBackground sets the clear color for subsequent frames.
func (o *Oscilloscope) SetBackground(c [4]uint8) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.style.Background.R, o.style.Background.G, o.style.Background.B, o.style.Background.A = c[0], c[1], c[2], c[3]
}

// SetStyle replaces the whole drawing style for subsequent frames.
func (o *Oscilloscope) SetStyle(s Style) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.style = s
}

// Style returns the current drawing style.
func (o *Oscilloscope) Style() Style {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.style
}

// Frame returns a deep copy of the current drawable primitive stamped with
// the current style. The copy is the painters' entire input: taking it
// serializes against appends on the instance mutex, so a paint observes
// exactly the latest committed core state at acquisition time.
func (o *Oscilloscope) Frame() Frame {
	o.mu.Lock()
	defer o.mu.Unlock()
	f := o.frame.clone()
	f.Style = o.style
	return f
}

// Window returns a copy of the current visible window.
func (o *Oscilloscope) Window() Window {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.win
}

// Len returns the number of samples appended this session, including any
// evicted by bounded-history mode.
func (o *Oscilloscope) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sig.Total()
}

// Held returns the number of samples currently in memory. Without bounded
// history this equals Len.
func (o *Oscilloscope) Held() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sig.Len()
}
