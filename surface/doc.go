// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawable surface abstraction for uik
// renderers.
//
// A Surface is a 2D pixel buffer that drawing operations target. The
// package ships a CPU-backed [ImageSurface]; GPU-backed surfaces are
// provided by renderer backends and registered through the same
// registry, so renderer code selects a surface by priority without
// depending on a specific implementation.
//
// Surfaces are NOT safe for concurrent use. Each surface must be used
// from a single goroutine; in uik that goroutine is the render loop.
package surface
