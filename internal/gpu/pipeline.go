// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/scope"
)

//go:embed shaders/trace.wgsl
var traceShaderSource string

// TraceShaderSource returns the embedded WGSL source of the trace shader.
func TraceShaderSource() string { return traceShaderSource }

// traceUniformSize is the byte size of the trace uniform buffer.
// Layout: color (vec4<f32>) = 16 bytes.
const traceUniformSize = 16

// traceVertexStride is the byte stride per vertex: 2 x float32 (x, y) = 8 bytes.
const traceVertexStride = 8

// TraceRenderer owns the GPU resources for line-strip trace rendering:
// the shader module, the uniform bind group, a growable vertex buffer,
// and one render pipeline per target texture format. It renders into a
// caller-supplied texture view and never allocates its own color targets.
//
// Not safe for concurrent use.
type TraceRenderer struct {
	device hal.Device
	queue  hal.Queue

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipelines     map[gputypes.TextureFormat]hal.RenderPipeline

	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup

	vertBuf hal.Buffer
	vertCap uint64
}

// NewTraceRenderer compiles the trace shader and creates the shared
// layouts and the uniform bind group. Pipelines are created lazily, one
// per target format, on first use.
func NewTraceRenderer(device hal.Device, queue hal.Queue) (*TraceRenderer, error) {
	tr := &TraceRenderer{
		device:    device,
		queue:     queue,
		pipelines: make(map[gputypes.TextureFormat]hal.RenderPipeline),
	}
	if err := tr.createResources(); err != nil {
		tr.Destroy()
		return nil, err
	}
	return tr, nil
}

func (tr *TraceRenderer) createResources() error {
	// Validate through naga first so a broken shader surfaces as a compile
	// error instead of a backend-specific module failure.
	if err := ValidateShader(traceShaderSource); err != nil {
		return err
	}

	shader, err := tr.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "trace_shader",
		Source: hal.ShaderSource{WGSL: traceShaderSource},
	})
	if err != nil {
		return fmt.Errorf("gpu: compile trace shader: %v: %w", err, scope.ErrCompile)
	}
	tr.shader = shader

	// One uniform buffer at group(0) binding(0), visible to both stages.
	uniformLayout, err := tr.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "trace_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create uniform bind group layout: %w", err)
	}
	tr.uniformLayout = uniformLayout

	pipeLayout, err := tr.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "trace_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{tr.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	tr.pipeLayout = pipeLayout

	uniformBuf, err := tr.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "trace_uniform",
		Size:  traceUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}
	tr.uniformBuf = uniformBuf

	bindGroup, err := tr.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "trace_bind",
		Layout: tr.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: traceUniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	tr.bindGroup = bindGroup
	return nil
}

// pipelineFor returns the line-strip pipeline for the given color format,
// creating and caching it on first request.
func (tr *TraceRenderer) pipelineFor(format gputypes.TextureFormat) (hal.RenderPipeline, error) {
	if p, ok := tr.pipelines[format]; ok {
		return p, nil
	}

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := tr.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "trace_pipeline",
		Layout: tr.pipeLayout,
		Vertex: hal.VertexState{
			Module:     tr.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: traceVertexStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{
							Format:         gputypes.VertexFormatFloat32x2,
							Offset:         0,
							ShaderLocation: 0,
						},
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     tr.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyLineStrip,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create trace pipeline: %w", err)
	}
	tr.pipelines[format] = pipeline
	return pipeline, nil
}

// ensureVertexBuffer grows the vertex buffer to at least size bytes.
// The buffer only grows; a shrinking trace reuses the existing allocation.
func (tr *TraceRenderer) ensureVertexBuffer(size uint64) error {
	if tr.vertBuf != nil && tr.vertCap >= size {
		return nil
	}
	if tr.vertBuf != nil {
		tr.device.DestroyBuffer(tr.vertBuf)
		tr.vertBuf = nil
		tr.vertCap = 0
	}
	buf, err := tr.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "trace_verts",
		Size:  size,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	tr.vertBuf = buf
	tr.vertCap = size
	return nil
}

// Render encodes one frame: clear the view to the background color, then
// draw vertexCount vertices of the line strip. With fewer than two
// vertices only the clear happens, so an empty trace still presents the
// background. verts holds interleaved clip-space float32 pairs.
func (tr *TraceRenderer) Render(view hal.TextureView, format gputypes.TextureFormat,
	verts []byte, vertexCount int, stroke [4]float32, background gputypes.Color,
) error {
	draw := vertexCount >= 2 && len(verts) >= vertexCount*traceVertexStride

	var pipeline hal.RenderPipeline
	if draw {
		var err error
		pipeline, err = tr.pipelineFor(format)
		if err != nil {
			return err
		}
		if err := tr.ensureVertexBuffer(uint64(len(verts))); err != nil {
			return err
		}
		tr.queue.WriteBuffer(tr.vertBuf, 0, verts)
		tr.queue.WriteBuffer(tr.uniformBuf, 0, makeColorUniform(stroke))
	}

	encoder, err := tr.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "trace_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("trace_render"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "trace_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     gputypes.LoadOpClear,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: background,
			},
		},
	})
	if draw {
		rp.SetPipeline(pipeline)
		rp.SetBindGroup(0, tr.bindGroup, nil)
		rp.SetVertexBuffer(0, tr.vertBuf, 0)
		rp.Draw(uint32(vertexCount), 1, 0, 0)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer tr.device.FreeCommandBuffer(cmdBuf)

	fence, err := tr.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer tr.device.DestroyFence(fence)

	if err := tr.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := tr.device.Wait(fence, 1, 5*time.Second)
	return fenceWaitErr(fenceOK, err)
}

// fenceWaitErr folds the two failure modes of Device.Wait into one error:
// the wait itself failed, or it returned cleanly without the fence signaling.
func fenceWaitErr(fenceOK bool, err error) error {
	if err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if !fenceOK {
		return errors.New("wait for GPU: fence timeout")
	}
	return nil
}

// Destroy releases all GPU resources in reverse creation order. Safe to
// call on a partially constructed renderer and safe to call twice.
func (tr *TraceRenderer) Destroy() {
	if tr.device == nil {
		return
	}
	if tr.vertBuf != nil {
		tr.device.DestroyBuffer(tr.vertBuf)
		tr.vertBuf = nil
		tr.vertCap = 0
	}
	if tr.bindGroup != nil {
		tr.device.DestroyBindGroup(tr.bindGroup)
		tr.bindGroup = nil
	}
	if tr.uniformBuf != nil {
		tr.device.DestroyBuffer(tr.uniformBuf)
		tr.uniformBuf = nil
	}
	for format, p := range tr.pipelines {
		tr.device.DestroyRenderPipeline(p)
		delete(tr.pipelines, format)
	}
	if tr.pipeLayout != nil {
		tr.device.DestroyPipelineLayout(tr.pipeLayout)
		tr.pipeLayout = nil
	}
	if tr.uniformLayout != nil {
		tr.device.DestroyBindGroupLayout(tr.uniformLayout)
		tr.uniformLayout = nil
	}
	if tr.shader != nil {
		tr.device.DestroyShaderModule(tr.shader)
		tr.shader = nil
	}
}

// makeColorUniform packs a premultiplied RGBA color into the 16-byte
// uniform layout.
func makeColorUniform(color [4]float32) []byte {
	buf := make([]byte, traceUniformSize)
	for i, v := range color {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
