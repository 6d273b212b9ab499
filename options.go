package scope

// Option configures an Oscilloscope during creation.
//
// Example:
//
//	osc := scope.New(
//	    scope.WithTimeScale(4),
//	    scope.WithSize(800, 600),
//	    scope.WithBoundedHistory(),
//	)
type Option func(*Oscilloscope)

// WithTimeScale sets the number of seconds spanned by the full horizontal
// extent of the display. Non-positive values are ignored.
func WithTimeScale(seconds float64) Option {
	return func(o *Oscilloscope) {
		if seconds > 0 {
			o.tr.TimeScale = seconds
		}
	}
}

// WithAmpScale sets the number of amplitude units spanned by the full
// vertical extent of the display. Non-positive values are ignored.
func WithAmpScale(units float64) Option {
	return func(o *Oscilloscope) {
		if units > 0 {
			o.tr.AmpScale = units
		}
	}
}

// WithAmpTranslation sets the vertical offset in amplitude-axis units.
func WithAmpTranslation(units float64) Option {
	return func(o *Oscilloscope) { o.tr.AmpTranslation = units }
}

// WithSize sets the initial surface size in pixels. The size is normally
// driven by surface lifecycle notifications; this option matters for
// targets whose size is known up front, such as offscreen pixmaps.
func WithSize(width, height int) Option {
	return func(o *Oscilloscope) { o.tr.setSize(width, height) }
}

// WithStyle sets the initial drawing style.
func WithStyle(s Style) Option {
	return func(o *Oscilloscope) { o.style = s }
}

// WithBoundedHistory enables eviction of samples older than the visible
// window's begin index after each recompute. The default keeps the full
// session history in memory even though only the trailing window is ever
// drawn. Eviction preserves windowing semantics: indices stay absolute and
// the first sample's time is retained.
func WithBoundedHistory() Option {
	return func(o *Oscilloscope) { o.bounded = true }
}

// WithStrictOrdering makes Append return ErrInvalidSampleOrder when a
// sample's time precedes the previous sample's. The default accepts
// out-of-order samples and renders an undefined but harmless result.
func WithStrictOrdering() Option {
	return func(o *Oscilloscope) { o.strict = true }
}
