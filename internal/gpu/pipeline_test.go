// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/scope"
)

func TestTraceShaderSourceEmbedded(t *testing.T) {
	src := TraceShaderSource()
	if src == "" {
		t.Fatal("trace shader source is empty")
	}
	for _, entry := range []string{"vs_main", "fs_main", "@group(0) @binding(0)"} {
		if !strings.Contains(src, entry) {
			t.Errorf("shader source missing %q", entry)
		}
	}
}

func TestMakeColorUniform(t *testing.T) {
	color := [4]float32{0.25, 0.5, 0.75, 1}
	buf := makeColorUniform(color)

	if len(buf) != traceUniformSize {
		t.Fatalf("len = %d, want %d", len(buf), traceUniformSize)
	}
	for i, want := range color {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != want {
			t.Errorf("component %d = %v, want %v", i, got, want)
		}
	}
}

func TestCreateResourcesValidatesShader(t *testing.T) {
	orig := traceShaderSource
	traceShaderSource = "fn broken( {"
	defer func() { traceShaderSource = orig }()

	// The device is nil, so validation must reject the source before any
	// device call is reached.
	tr := &TraceRenderer{}
	err := tr.createResources()
	if err == nil {
		t.Fatal("createResources accepted a broken shader")
	}
	if !errors.Is(err, scope.ErrCompile) {
		t.Errorf("error = %v, want ErrCompile", err)
	}
}

func TestFenceWaitErr(t *testing.T) {
	cause := errors.New("device lost")

	if err := fenceWaitErr(true, nil); err != nil {
		t.Errorf("signaled fence: err = %v, want nil", err)
	}
	if err := fenceWaitErr(false, cause); !errors.Is(err, cause) {
		t.Errorf("wait failure: err = %v, want wrapped %v", err, cause)
	}
	err := fenceWaitErr(false, nil)
	if err == nil {
		t.Fatal("timed-out fence: err = nil")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("timeout error = %q, want a timeout message", err)
	}
	if strings.Contains(err.Error(), "%!") {
		t.Errorf("malformed error string: %q", err)
	}
}

func TestVertexStrideMatchesClipLayout(t *testing.T) {
	// Two float32 coordinates per vertex.
	if traceVertexStride != 8 {
		t.Errorf("traceVertexStride = %d, want 8", traceVertexStride)
	}
}
