// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides presentable drawing surfaces for the paint
// loop.
//
// A Provider hands out render targets and publishes painted frames. The
// built-in ImageSurface is a CPU provider that delivers each presented
// frame to a callback; GPU-backed providers come from host applications
// or third-party backends registered through this package's registry.
package surface
