// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu manages the GPU context and drawable surface for the
// wgpu renderer backend.
//
// The package owns the native graphics lifecycle: instance acquisition,
// adapter/device/queue creation, framebuffer binding, and the
// texture-backed drawable surface. Initialization is strictly ordered
// and each step's failure short-circuits the rest with a classified
// sentinel error; the renderer layer maps those sentinels onto the
// framework error taxonomy.
//
// A Context and its surface are exclusively owned by a single
// goroutine (the render loop). Nothing in this package is safe for
// concurrent use.
package gpu
