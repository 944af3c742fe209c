// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Surface is the rendering target abstraction.
//
// A Surface represents a 2D canvas that can be drawn to. Implementations
// may use CPU-based software rendering or a GPU backend.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// FillCircle fills a circle centered at (cx, cy) with the given
	// radius using the specified style. Non-positive radii are a no-op.
	FillCircle(cx, cy, radius float64, style FillStyle)

	// Flush ensures all pending drawing operations are complete.
	// For CPU surfaces this is typically a no-op. For GPU surfaces
	// this may submit commands and wait for completion.
	Flush() error

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect
	// the surface. Taking a snapshot finalizes pending draws, which
	// may be slow for GPU surfaces as it requires readback.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// After Close, the surface must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// FillStyle defines how to fill a shape.
type FillStyle struct {
	// Color is the fill color.
	Color color.Color

	// Antialias enables anti-aliased edges. Implementations that are
	// inherently anti-aliased accept false and ignore it.
	Antialias bool
}

// DefaultFillStyle returns a FillStyle with default values:
// opaque black, anti-aliased.
func DefaultFillStyle() FillStyle {
	return FillStyle{
		Color:     color.Black,
		Antialias: true,
	}
}

// Options holds creation parameters for a surface.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int
}
