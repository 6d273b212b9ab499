// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/gogpu/gputypes"
)

// TextureView represents a view into a GPU texture, used as the color
// attachment of the GPU painter's render pass. The concrete type comes
// from the host's surface implementation.
type TextureView interface {
	// Destroy releases resources associated with this view.
	Destroy()
}

// RenderTarget defines where a painted frame goes.
//
// A target may support CPU access (Pixels), GPU access (TextureView), or
// both. The painter chooses the access method it needs: SoftwarePainter
// requires Pixels, GPUPainter requires TextureView.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// TextureView returns the GPU texture view for this target.
	// Returns nil for CPU-only targets.
	TextureView() TextureView

	// Pixels returns direct access to pixel data, 4 bytes per pixel.
	// Returns nil for GPU-only targets.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// PixmapTarget is a CPU-backed render target over *image.RGBA. It is the
// target of the software painter and of offscreen captures.
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int { return t.img.Bounds().Dx() }

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int { return t.img.Bounds().Dy() }

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureView returns nil as this is a CPU-only target.
func (t *PixmapTarget) TextureView() TextureView { return nil }

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte { return t.img.Pix }

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int { return t.img.Stride }

// Image returns the underlying image.
func (t *PixmapTarget) Image() *image.RGBA { return t.img }
