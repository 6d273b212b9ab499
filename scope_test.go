package scope

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func feed(t *testing.T, o *Oscilloscope, n int, dt float64) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := o.Append(Sample{Time: float64(i) * dt, Amp: math.Sin(float64(i) * 0.2)}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
}

func TestOscilloscope_ActivateResets(t *testing.T) {
	o := New(WithTimeScale(4), WithSize(200, 100))
	feed(t, o, 150, 0.1)
	if o.Len() == 0 || len(o.Frame().Pts) == 0 {
		t.Fatal("no state accumulated before reset")
	}

	o.SetActive(true)

	if got := o.Len(); got != 0 {
		t.Errorf("Len = %d after reset, want 0", got)
	}
	if w := o.Window(); w.Begin != 0 || w.End != 0 || w.AmpRange != 0 || w.TimeTranslation != 0 {
		t.Errorf("window not reset: %+v", w)
	}
	if f := o.Frame(); len(f.Pts) != 0 || f.LineCount != 0 {
		t.Errorf("primitive not discarded: %d pts", len(f.Pts))
	}
}

func TestOscilloscope_DeactivateKeepsFrame(t *testing.T) {
	o := New(WithTimeScale(4), WithSize(200, 100))
	feed(t, o, 150, 0.1)
	before := o.Frame()

	o.SetActive(false)

	after := o.Frame()
	if len(after.Pts) != len(before.Pts) || after.LineCount != before.LineCount {
		t.Fatalf("frame changed on deactivate: %d -> %d pts", len(before.Pts), len(after.Pts))
	}
	for i := range after.Pts {
		if after.Pts[i] != before.Pts[i] {
			t.Fatalf("point %d changed: %v -> %v", i, before.Pts[i], after.Pts[i])
		}
	}
}

func TestOscilloscope_StrictOrdering(t *testing.T) {
	o := New(WithStrictOrdering(), WithSize(100, 100))
	if err := o.Append(Sample{Time: 1, Amp: 0}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := o.Append(Sample{Time: 0.5, Amp: 0}); !errors.Is(err, ErrInvalidSampleOrder) {
		t.Fatalf("out-of-order append: err = %v, want ErrInvalidSampleOrder", err)
	}
	if got := o.Len(); got != 1 {
		t.Errorf("rejected sample was stored: Len = %d", got)
	}
	// Equal timestamps are non-decreasing and stay legal.
	if err := o.Append(Sample{Time: 1, Amp: 1}); err != nil {
		t.Errorf("equal-time append: %v", err)
	}
}

func TestOscilloscope_PermissiveOrdering(t *testing.T) {
	o := New(WithSize(100, 100))
	if err := o.Append(Sample{Time: 1, Amp: 0}); err != nil {
		t.Fatal(err)
	}
	if err := o.Append(Sample{Time: 0.5, Amp: 0}); err != nil {
		t.Fatalf("permissive mode returned %v", err)
	}
}

// Bounded history must be behavior-preserving: same appends, same frames,
// fewer samples held.
func TestOscilloscope_BoundedHistory(t *testing.T) {
	full := New(WithTimeScale(2), WithSize(200, 100))
	bounded := New(WithTimeScale(2), WithSize(200, 100), WithBoundedHistory())

	for i := 0; i < 400; i++ {
		s := Sample{Time: float64(i) * 0.05, Amp: math.Sin(float64(i) * 0.3)}
		if err := full.Append(s); err != nil {
			t.Fatal(err)
		}
		if err := bounded.Append(s); err != nil {
			t.Fatal(err)
		}
	}

	if full.Len() != bounded.Len() {
		t.Errorf("Len diverged: %d vs %d", full.Len(), bounded.Len())
	}
	if bounded.Held() >= full.Held() {
		t.Errorf("bounded held %d of %d samples, nothing evicted", bounded.Held(), full.Held())
	}
	fw, bw := full.Window(), bounded.Window()
	if fw != bw {
		t.Errorf("window diverged: %+v vs %+v", fw, bw)
	}
	ff, bf := full.Frame(), bounded.Frame()
	if len(ff.Pts) != len(bf.Pts) {
		t.Fatalf("frame diverged: %d vs %d pts", len(ff.Pts), len(bf.Pts))
	}
	for i := range ff.Pts {
		if ff.Pts[i] != bf.Pts[i] {
			t.Fatalf("point %d diverged: %v vs %v", i, ff.Pts[i], bf.Pts[i])
		}
	}
}

func TestOscilloscope_SettersNextRecompute(t *testing.T) {
	o := New(WithTimeScale(4), WithSize(200, 100))
	feed(t, o, 100, 0.1)
	before := o.Frame()

	// A scale change alone must not rewrite the cached primitive.
	o.SetTimeScale(1)
	mid := o.Frame()
	if len(mid.Pts) != len(before.Pts) {
		t.Errorf("scale setter forced a rebuild: %d -> %d pts", len(before.Pts), len(mid.Pts))
	}

	// The next append picks the new span up: with a 1 second span over a
	// 10 second signal the window slides much further right.
	if err := o.Append(Sample{Time: 10.0, Amp: 0}); err != nil {
		t.Fatal(err)
	}
	after := o.Window()
	if after.End != 100 {
		t.Errorf("End = %d, want 100", after.End)
	}
	if !approx(after.TimeTranslation, 9.0, 1e-9) {
		t.Errorf("TimeTranslation = %v, want 9.0 under the new span", after.TimeTranslation)
	}
	if after.Begin < 80 {
		t.Errorf("Begin = %d, expected the tighter span to slide the window near the end", after.Begin)
	}
}

func TestOscilloscope_StyleSetters(t *testing.T) {
	o := New()
	o.SetStrokeColor([4]uint8{1, 2, 3, 4})
	o.SetBackground([4]uint8{5, 6, 7, 8})
	o.SetStrokeWidth(3)
	s := o.Style()
	if s.Stroke.R != 1 || s.Stroke.G != 2 || s.Stroke.B != 3 || s.Stroke.A != 4 {
		t.Errorf("stroke = %+v", s.Stroke)
	}
	if s.Background.R != 5 {
		t.Errorf("background = %+v", s.Background)
	}
	if s.StrokeWidth != 3 {
		t.Errorf("stroke width = %v", s.StrokeWidth)
	}
	o.SetStrokeWidth(-1)
	if got := o.Style().StrokeWidth; got != 3 {
		t.Errorf("negative width accepted: %v", got)
	}
}

func TestOscilloscope_ResizeRebuilds(t *testing.T) {
	o := New(WithTimeScale(4), WithSize(200, 100))
	feed(t, o, 50, 0.01)
	before := o.Frame()
	o.Resize(400, 100)
	after := o.Frame()
	if len(before.Pts) == 0 || len(after.Pts) != len(before.Pts) {
		t.Fatalf("unexpected point counts: %d before, %d after", len(before.Pts), len(after.Pts))
	}
	if !approx(after.Pts[len(after.Pts)-1].X, 2*before.Pts[len(before.Pts)-1].X, 1e-9) {
		t.Errorf("resize did not refresh pixel factors: last X %v -> %v",
			before.Pts[len(before.Pts)-1].X, after.Pts[len(after.Pts)-1].X)
	}
	if after.Width != 400 {
		t.Errorf("frame width = %d, want 400", after.Width)
	}
}

// Concurrent producers and frame consumers must not race or deadlock;
// run with -race.
func TestOscilloscope_ConcurrentAppendAndFrame(t *testing.T) {
	o := New(WithTimeScale(1), WithSize(100, 100))
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			_ = o.Append(Sample{Time: float64(i) * 0.001, Amp: math.Sin(float64(i))})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			f := o.Frame()
			if f.LineCount < 0 {
				t.Errorf("negative LineCount %d", f.LineCount)
				return
			}
		}
	}()
	wg.Wait()
	if w := o.Window(); w.End != o.Len()-1 {
		t.Errorf("End = %d, want %d", w.End, o.Len()-1)
	}
}
