package scope

import (
	"encoding/binary"
	"math"
)

// Point is a drawable point in pixel coordinates with the origin at the
// bottom-left and Y increasing upward. The immediate-mode painter applies
// the vertical flip once at the canvas level, not per point.
type Point struct {
	X, Y float64
}

// Frame is the drawable primitive: one point per visible sample, in both
// pixel coordinates (for immediate-mode drawing) and interleaved clip-space
// float32 pairs (for the GPU line strip). A Frame is an immutable snapshot;
// painters never touch core state.
//
// LineCount is the vertex count passed to the line-strip draw call. It is
// End-Begin, one fewer than the point count, matching the observed behavior
// of the windowing algorithm: the final point is built but not drawn by the
// GPU variant.
type Frame struct {
	Pts       []Point
	Clip      []float32
	LineCount int
	Width     int
	Height    int
	Style     Style
}

// rebuild regenerates the primitive from the current window. It is a full
// rebuild on every update, never an incremental patch, and it reads no
// sample outside [win.Begin, win.End]. Rebuilding is idempotent for
// identical window and transform state.
func (f *Frame) rebuild(sig *Signal, win *Window, tr *Transform) {
	f.Pts = f.Pts[:0]
	f.Clip = f.Clip[:0]
	f.LineCount = 0
	f.Width, f.Height = tr.Size()
	if sig.Total() == 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}
	firstTime := sig.First().Time
	for i := win.Begin; i <= win.End; i++ {
		smp := sig.At(i)
		x := tr.timePx(smp.Time, firstTime, win.TimeTranslation)
		y := tr.ampPx(smp.Amp, win)
		f.Pts = append(f.Pts, Point{X: x, Y: y})
		f.Clip = append(f.Clip, planeX(x, f.Width), planeY(y, f.Height))
	}
	f.LineCount = win.End - win.Begin
}

// clone deep-copies the frame so snapshots stay valid across rebuilds.
func (f *Frame) clone() Frame {
	c := *f
	c.Pts = append([]Point(nil), f.Pts...)
	c.Clip = append([]float32(nil), f.Clip...)
	return c
}

// reset discards the cached primitive.
func (f *Frame) reset() {
	f.Pts = f.Pts[:0]
	f.Clip = f.Clip[:0]
	f.LineCount = 0
}

// VertexBytes serializes the clip-space vertices as little-endian float32
// pairs, two per point, ready for upload to a GPU vertex buffer. dst is
// reused when large enough.
func (f *Frame) VertexBytes(dst []byte) []byte {
	n := len(f.Clip) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, v := range f.Clip {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
	return dst
}

// Segments walks the visible points pairwise, calling fn once per
// consecutive pair. It stops early if fn returns false. With fewer than
// two points nothing is emitted.
func (f *Frame) Segments(fn func(a, b Point) bool) {
	for i := 1; i < len(f.Pts); i++ {
		if !fn(f.Pts[i-1], f.Pts[i]) {
			return
		}
	}
}
