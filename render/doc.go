// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render provides the two painter back-ends for the oscilloscope
// core: a software painter that strokes the trace onto a CPU pixmap, and a
// GPU painter that draws it as a wgpu line strip. Both consume the same
// immutable scope.Frame snapshots and share the Painter contract, so the
// windowing and scaling algorithm lives in exactly one place.
//
// The package also provides RenderTarget (where output goes), DeviceHandle
// (how the host application hands over its GPU device) and Loop (the
// self-driven paint goroutine with cooperative cancellation).
package render
