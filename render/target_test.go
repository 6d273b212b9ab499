// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewPixmapTarget(t *testing.T) {
	target := NewPixmapTarget(100, 50)

	if got := target.Width(); got != 100 {
		t.Errorf("Width() = %d, want 100", got)
	}
	if got := target.Height(); got != 50 {
		t.Errorf("Height() = %d, want 50", got)
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
	}
	if target.TextureView() != nil {
		t.Error("TextureView() should be nil for CPU target")
	}
	if target.Pixels() == nil {
		t.Error("Pixels() should not be nil for CPU target")
	}
	if got, want := len(target.Pixels()), 100*50*4; got != want {
		t.Errorf("len(Pixels()) = %d, want %d", got, want)
	}
	if got := target.Stride(); got != 400 {
		t.Errorf("Stride() = %d, want 400", got)
	}
}

func TestNewPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	target := NewPixmapTargetFromImage(img)

	if target.Image() != img {
		t.Error("Image() should return the wrapped image without copying")
	}
	if target.Width() != 8 || target.Height() != 4 {
		t.Errorf("size = %dx%d, want 8x4", target.Width(), target.Height())
	}

	// Writes through Pixels must land in the original image.
	target.Pixels()[0] = 0xAB
	if img.Pix[0] != 0xAB {
		t.Error("Pixels() should alias the wrapped image")
	}
}

var _ RenderTarget = (*PixmapTarget)(nil)
