// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/scope"
)

func testStyle() scope.Style {
	return scope.Style{
		Stroke:      color.NRGBA{R: 255, A: 255},
		StrokeWidth: 2,
		Background:  color.NRGBA{A: 255},
	}
}

func TestNewSoftwarePainter(t *testing.T) {
	if NewSoftwarePainter() == nil {
		t.Fatal("NewSoftwarePainter() returned nil")
	}
}

func TestSoftwarePainterCapabilities(t *testing.T) {
	caps := NewSoftwarePainter().Capabilities()
	if caps.IsGPU {
		t.Error("software painter should not report IsGPU")
	}
	if !caps.SupportsAntialiasing {
		t.Error("software painter should support antialiasing")
	}
}

func TestSoftwarePainterClearsBackground(t *testing.T) {
	painter := NewSoftwarePainter()
	target := NewPixmapTarget(20, 20)
	frame := scope.Frame{Width: 20, Height: 20, Style: scope.Style{
		Background:  color.NRGBA{R: 10, G: 20, B: 30, A: 255},
		Stroke:      color.NRGBA{R: 255, A: 255},
		StrokeWidth: 1,
	}}

	if err := painter.Paint(target, frame); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	px := target.Image().RGBAAt(0, 0)
	if px.R != 10 || px.G != 20 || px.B != 30 || px.A != 255 {
		t.Errorf("corner pixel = %v, want background 10/20/30/255", px)
	}
}

func TestSoftwarePainterStrokesSegment(t *testing.T) {
	painter := NewSoftwarePainter()
	target := NewPixmapTarget(100, 100)
	frame := scope.Frame{
		Pts:       []scope.Point{{X: 10, Y: 10}, {X: 90, Y: 90}},
		LineCount: 1,
		Width:     100,
		Height:    100,
		Style:     testStyle(),
	}

	if err := painter.Paint(target, frame); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}

	// The diagonal passes through the image center.
	if px := target.Image().RGBAAt(50, 50); px.R < 100 {
		t.Errorf("center pixel R = %d, want stroked (>= 100)", px.R)
	}
	// A corner off the diagonal stays background.
	if px := target.Image().RGBAAt(90, 90); px.R > 20 {
		t.Errorf("off-trace pixel R = %d, want background", px.R)
	}
}

func TestSoftwarePainterSinglePointDrawsNothing(t *testing.T) {
	painter := NewSoftwarePainter()
	target := NewPixmapTarget(16, 16)
	frame := scope.Frame{
		Pts:    []scope.Point{{X: 8, Y: 8}},
		Width:  16,
		Height: 16,
		Style:  testStyle(),
	}

	if err := painter.Paint(target, frame); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	for i := 0; i < len(target.Pixels()); i += 4 {
		if target.Pixels()[i] != 0 {
			t.Fatalf("pixel %d stroked, want background only", i/4)
		}
	}
}

func TestSoftwarePainterDegenerateTarget(t *testing.T) {
	painter := NewSoftwarePainter()
	err := painter.Paint(NewPixmapTarget(0, 0), scope.Frame{Style: testStyle()})
	if !errors.Is(err, scope.ErrConfiguration) {
		t.Errorf("Paint() error = %v, want ErrConfiguration", err)
	}
}

func TestSoftwarePainterClose(t *testing.T) {
	if err := NewSoftwarePainter().Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}
