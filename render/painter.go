// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/scope"
)

// Painter draws one frame of the trace to a target.
//
// Both back-ends honor the same contract: clear the target to the frame's
// background color, then draw the polyline primitive if one is available.
// The software variant needs at least two visible points; the GPU variant
// needs a non-zero line count. The frame's stroke color and width apply
// uniformly to the whole primitive.
//
// Painters are stateless with respect to core data: every call receives an
// immutable scope.Frame snapshot, so the same painter can serve different
// oscilloscopes and targets. Painters are NOT safe for concurrent use.
type Painter interface {
	// Paint clears the target and draws the frame's primitive.
	Paint(target RenderTarget, frame scope.Frame) error

	// Close releases any resources held by the painter.
	Close() error
}

// Capabilities describes what a painter supports.
type Capabilities struct {
	// IsGPU indicates a GPU-accelerated painter.
	IsGPU bool

	// SupportsAntialiasing indicates anti-aliased stroking.
	SupportsAntialiasing bool
}

// CapablePainter is an optional interface for painters that can report
// their capabilities.
type CapablePainter interface {
	Painter

	// Capabilities returns the painter's capabilities.
	Capabilities() Capabilities
}
