// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu holds the WebGPU trace pipeline behind the GPU painter.
//
// The pipeline is deliberately small: one embedded WGSL shader, one uniform
// buffer carrying the stroke color, and one line-strip render pipeline per
// target texture format. Vertices are uploaded as interleaved clip-space
// float32 pairs, so no transform work happens on the GPU.
package gpu
