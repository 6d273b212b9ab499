// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/scope"
)

// SoftwarePainter is the pure-CPU back-end. It clears the target to the
// frame background and strokes the trace as anti-aliased quads, one per
// segment, rasterized in a single pass. It needs a target with CPU-visible
// pixels and at least two visible points to draw anything.
type SoftwarePainter struct {
	ras vector.Rasterizer
}

// NewSoftwarePainter returns a CPU painter. It holds no external resources
// and is always available, which makes it the fallback when no GPU device
// is offered by the host.
func NewSoftwarePainter() *SoftwarePainter {
	return &SoftwarePainter{}
}

// Paint implements Painter.
func (p *SoftwarePainter) Paint(target RenderTarget, frame scope.Frame) error {
	w, h := target.Width(), target.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("render: degenerate target %dx%d: %w", w, h, scope.ErrConfiguration)
	}
	pix := target.Pixels()
	if pix == nil {
		return fmt.Errorf("render: target has no CPU-visible pixels: %w", scope.ErrConfiguration)
	}
	dst := &image.RGBA{Pix: pix, Stride: target.Stride(), Rect: image.Rect(0, 0, w, h)}

	draw.Draw(dst, dst.Bounds(), image.NewUniform(frame.Style.Background), image.Point{}, draw.Src)

	if len(frame.Pts) < 2 {
		return nil
	}

	p.ras.Reset(w, h)
	p.ras.DrawOp = draw.Over
	hw := frame.Style.StrokeWidth / 2
	frame.Segments(func(a, b scope.Point) bool {
		p.strokeSegment(a, b, hw, float64(h))
		return true
	})
	p.ras.Draw(dst, dst.Bounds(), image.NewUniform(frame.Style.Stroke), image.Point{})
	return nil
}

// strokeSegment appends one quad for the segment a-b, offset by half the
// stroke width along the segment normal. Trace points carry a bottom-left
// origin, so the vertical flip happens here.
func (p *SoftwarePainter) strokeSegment(a, b scope.Point, hw, height float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal, flipped with the Y axis.
	nx := float32(-dy / length * hw)
	ny := float32(dx / length * hw)

	ax, ay := float32(a.X), float32(height-a.Y)
	bx, by := float32(b.X), float32(height-b.Y)

	p.ras.MoveTo(ax+nx, ay-ny)
	p.ras.LineTo(bx+nx, by-ny)
	p.ras.LineTo(bx-nx, by+ny)
	p.ras.LineTo(ax-nx, ay+ny)
	p.ras.ClosePath()
}

// Close implements Painter. The software painter holds no resources.
func (p *SoftwarePainter) Close() error { return nil }

// Capabilities implements CapablePainter.
func (p *SoftwarePainter) Capabilities() Capabilities {
	return Capabilities{IsGPU: false, SupportsAntialiasing: true}
}

var (
	_ Painter        = (*SoftwarePainter)(nil)
	_ CapablePainter = (*SoftwarePainter)(nil)
)
