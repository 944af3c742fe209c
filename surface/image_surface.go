// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// BackendImage is the name of the built-in CPU surface backend.
const BackendImage = "image"

// kappa is the cubic Bezier control point distance for circle
// approximation. Equal to 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Circle fills are rasterized with golang.org/x/image/vector, which
// produces anti-aliased coverage and composites source-over. This is
// the default surface implementation for software rendering.
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// ras is reused across fills to avoid per-draw allocations.
	ras *vector.Rasterizer

	// closed tracks if Close has been called.
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given
// dimensions. Dimensions are clamped to a minimum of 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:    vector.NewRasterizer(width, height),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed || c == nil {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillCircle fills a circle centered at (cx, cy) with the given radius.
// The circle outline is approximated with four cubic Bezier segments
// and rasterized with anti-aliased coverage. The rasterizer is
// inherently anti-aliased; style.Antialias false is accepted and
// ignored.
func (s *ImageSurface) FillCircle(cx, cy, radius float64, style FillStyle) {
	if s.closed || radius <= 0 || style.Color == nil {
		return
	}

	k := kappa * radius
	x0, y0 := float32(cx), float32(cy)
	r32, k32 := float32(radius), float32(k)

	s.ras.Reset(s.width, s.height)
	s.ras.DrawOp = draw.Over

	// Clockwise from the rightmost point.
	s.ras.MoveTo(x0+r32, y0)
	s.ras.CubeTo(x0+r32, y0+k32, x0+k32, y0+r32, x0, y0+r32)
	s.ras.CubeTo(x0-k32, y0+r32, x0-r32, y0+k32, x0-r32, y0)
	s.ras.CubeTo(x0-r32, y0-k32, x0-k32, y0-r32, x0, y0-r32)
	s.ras.CubeTo(x0+k32, y0-r32, x0+r32, y0-k32, x0+r32, y0)
	s.ras.ClosePath()

	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(style.Color), image.Point{})
}

// Flush ensures all pending operations are complete.
// For ImageSurface, this is a no-op.
func (s *ImageSurface) Flush() error {
	return nil
}

// Snapshot returns a copy of the current surface contents.
// Returns nil if the surface is closed.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(result.Pix, s.img.Pix)
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.ras = nil
	return nil
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy. Returns nil after Close.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Verify ImageSurface implements Surface.
var _ Surface = (*ImageSurface)(nil)
