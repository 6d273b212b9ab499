// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/scope/render"
)

// Provider is a presentable surface: it hands out the target for the
// next frame and publishes the painted result.
//
// Providers are NOT thread-safe with respect to painting. The paint loop
// calls AcquireTarget and Present from a single goroutine; Resize and
// Close may be called from others only when the implementation says so.
type Provider interface {
	// AcquireTarget returns the target for the next frame. A false return
	// is a transient miss and the caller retries.
	AcquireTarget() (render.RenderTarget, bool)

	// Present publishes a painted target.
	Present(target render.RenderTarget) error

	// Size returns the surface size in pixels.
	Size() (int, int)

	// Close releases the surface. Close is idempotent.
	Close() error
}

// ResizableProvider is an optional interface for surfaces that support
// resizing.
type ResizableProvider interface {
	Provider

	// Resize changes the surface dimensions. Existing content is
	// discarded.
	Resize(width, height int) error
}

// Options configures surface creation through the registry.
type Options struct {
	// Width and Height are the surface dimensions in pixels.
	Width  int
	Height int
}
