// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"sync"

	"github.com/gogpu/scope/render"
)

// ImageSurface is a CPU-based surface backed by an *image.RGBA.
//
// Each acquired target paints into the backing image; Present hands the
// image to the registered callback. This is the surface of headless and
// offscreen use: frame capture, tests, and hosts that blit the image into
// their own windowing.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.OnPresent(func(img *image.RGBA) {
//	    // encode, blit, or inspect the frame
//	})
type ImageSurface struct {
	mu     sync.Mutex
	target *render.PixmapTarget
	closed bool

	onPresent func(*image.RGBA)
}

// NewImageSurface creates a CPU surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{target: render.NewPixmapTarget(width, height)}
}

// OnPresent sets the callback invoked with the backing image after each
// presented frame. The image is reused between frames; callbacks that
// keep a frame must copy it.
func (s *ImageSurface) OnPresent(fn func(*image.RGBA)) {
	s.mu.Lock()
	s.onPresent = fn
	s.mu.Unlock()
}

// AcquireTarget implements Provider.
func (s *ImageSurface) AcquireTarget() (render.RenderTarget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false
	}
	return s.target, true
}

// Present implements Provider, delivering the frame to the callback.
func (s *ImageSurface) Present(target render.RenderTarget) error {
	s.mu.Lock()
	fn := s.onPresent
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return errors.New("surface: present on closed surface")
	}
	pt, ok := target.(*render.PixmapTarget)
	if !ok {
		return errors.New("surface: foreign target presented to image surface")
	}
	if fn != nil {
		fn(pt.Image())
	}
	return nil
}

// Size implements Provider.
func (s *ImageSurface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target.Width(), s.target.Height()
}

// Resize implements ResizableProvider. Content is discarded.
func (s *ImageSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("surface: degenerate resize")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("surface: resize on closed surface")
	}
	s.target = render.NewPixmapTarget(width, height)
	return nil
}

// Image returns the backing image. It is replaced on Resize.
func (s *ImageSurface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target.Image()
}

// Close implements Provider. Close is idempotent.
func (s *ImageSurface) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

var (
	_ Provider          = (*ImageSurface)(nil)
	_ ResizableProvider = (*ImageSurface)(nil)
	_ render.Surface    = (*ImageSurface)(nil)
)
