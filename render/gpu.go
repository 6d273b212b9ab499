// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/scope"
	"github.com/gogpu/scope/internal/gpu"
)

// GPUPainter draws the trace as a GPU line strip.
//
// The painter receives its device from the host through a DeviceHandle; it
// never creates GPU state of its own beyond the trace pipeline. Targets
// without a texture view fall back to the software painter when they have
// CPU-visible pixels, so the same painter serves windowed surfaces and
// offscreen pixmaps.
type GPUPainter struct {
	handle DeviceHandle
	trace  *gpu.TraceRenderer

	fallback *SoftwarePainter

	verts []byte
}

// NewGPUPainter creates a GPU painter on the host's device.
//
// The DeviceHandle must be provided by the host application (for example a
// gogpu.App); it must expose the underlying HAL device and queue. Returns
// a configuration error for a nil or foreign handle, and a compile error
// if the trace shader fails to build on this device.
func NewGPUPainter(handle DeviceHandle) (*GPUPainter, error) {
	if handle == nil {
		return nil, fmt.Errorf("render: nil device handle: %w", scope.ErrConfiguration)
	}

	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := handle.(halProvider)
	if !ok {
		return nil, fmt.Errorf("render: device handle does not expose HAL types: %w", scope.ErrConfiguration)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return nil, fmt.Errorf("render: device handle returned no hal.Device: %w", scope.ErrConfiguration)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return nil, fmt.Errorf("render: device handle returned no hal.Queue: %w", scope.ErrConfiguration)
	}

	trace, err := gpu.NewTraceRenderer(device, queue)
	if err != nil {
		return nil, err
	}
	return &GPUPainter{
		handle:   handle,
		trace:    trace,
		fallback: NewSoftwarePainter(),
	}, nil
}

// Paint implements Painter.
func (p *GPUPainter) Paint(target RenderTarget, frame scope.Frame) error {
	if target == nil {
		return fmt.Errorf("render: nil target: %w", scope.ErrConfiguration)
	}

	view := target.TextureView()
	if view == nil {
		if target.Pixels() != nil {
			return p.fallback.Paint(target, frame)
		}
		return fmt.Errorf("render: target offers neither texture view nor pixels: %w", scope.ErrConfiguration)
	}

	halView, err := resolveHalView(view)
	if err != nil {
		return err
	}

	p.verts = frame.VertexBytes(p.verts)
	stroke := premulVec(frame.Style.Stroke.R, frame.Style.Stroke.G, frame.Style.Stroke.B, frame.Style.Stroke.A)
	bg := premulVec(frame.Style.Background.R, frame.Style.Background.G, frame.Style.Background.B, frame.Style.Background.A)
	clear := gputypes.Color{
		R: float64(bg[0]), G: float64(bg[1]), B: float64(bg[2]), A: float64(bg[3]),
	}
	return p.trace.Render(halView, target.Format(), p.verts, frame.LineCount, stroke, clear)
}

// resolveHalView unwraps a target's texture view to the HAL type. Surface
// implementations either hand out hal.TextureView directly or expose it
// through a HalTextureView accessor.
func resolveHalView(view TextureView) (hal.TextureView, error) {
	if hv, ok := view.(hal.TextureView); ok {
		return hv, nil
	}
	type viewProvider interface {
		HalTextureView() any
	}
	if vp, ok := view.(viewProvider); ok {
		if hv, ok := vp.HalTextureView().(hal.TextureView); ok {
			return hv, nil
		}
	}
	return nil, fmt.Errorf("render: texture view does not expose a HAL view: %w", scope.ErrConfiguration)
}

// premulVec converts 8-bit non-premultiplied RGBA to premultiplied floats.
func premulVec(r, g, b, a uint8) [4]float32 {
	alpha := float32(a) / 255
	return [4]float32{
		float32(r) / 255 * alpha,
		float32(g) / 255 * alpha,
		float32(b) / 255 * alpha,
		alpha,
	}
}

// Close implements Painter, releasing the trace pipeline. The device
// stays with the host.
func (p *GPUPainter) Close() error {
	if p.trace != nil {
		p.trace.Destroy()
		p.trace = nil
	}
	return nil
}

// Capabilities implements CapablePainter.
func (p *GPUPainter) Capabilities() Capabilities {
	return Capabilities{IsGPU: true, SupportsAntialiasing: false}
}

// DeviceHandle returns the underlying device handle for hosts that need
// access to the shared device.
func (p *GPUPainter) DeviceHandle() DeviceHandle {
	return p.handle
}

var (
	_ Painter        = (*GPUPainter)(nil)
	_ CapablePainter = (*GPUPainter)(nil)
)
