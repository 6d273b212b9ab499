// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/scope"
)

// CompileToSPIRV compiles WGSL source to a SPIR-V word slice. The HAL
// accepts WGSL directly on most backends, but offline compilation through
// naga validates the source and serves backends that want SPIR-V.
func CompileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %v: %w", err, scope.ErrCompile)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// ValidateShader runs the trace shader source through naga without keeping
// the output. Used at renderer construction so a broken shader surfaces as
// a compile error instead of a dead pipeline.
func ValidateShader(wgslSource string) error {
	_, err := CompileToSPIRV(wgslSource)
	return err
}
