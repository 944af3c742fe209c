// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/uik/surface"
)

// BackendWGPU is the name of the GPU surface backend in the surface
// registry. It is registered while a Context is alive.
const BackendWGPU = "wgpu"

var (
	activeMu  sync.Mutex
	activeCtx *Context
)

// registerSurfaceBackend publishes the wgpu surface backend for the
// given context. Only one context at a time backs the registry entry;
// a newer context replaces an older one.
func registerSurfaceBackend(c *Context) {
	activeMu.Lock()
	activeCtx = c
	activeMu.Unlock()

	surface.Register(BackendWGPU, surface.PriorityGPU, func(opts surface.Options) (surface.Surface, error) {
		activeMu.Lock()
		ctx := activeCtx
		activeMu.Unlock()
		if ctx == nil {
			return nil, &surface.BackendUnavailableError{Name: BackendWGPU}
		}
		return NewSurface(ctx, NewRenderTarget(opts.Width, opts.Height), OriginBottomLeft)
	}, func() bool {
		activeMu.Lock()
		defer activeMu.Unlock()
		return activeCtx != nil
	})
}

// unregisterSurfaceBackend withdraws the wgpu backend if the closing
// context is the one backing it.
func unregisterSurfaceBackend(c *Context) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if activeCtx == c {
		activeCtx = nil
		surface.Unregister(BackendWGPU)
	}
}

// Surface is a GPU-backed drawable surface.
//
// Drawing happens on a CPU shadow surface; Flush uploads the shadow
// pixels to the texture. This mirrors the staged GPU pipeline: the
// texture and compiled circle shader are real resources, while
// rasterization remains on the CPU until wgpu render passes are
// available. Snapshot reads from the shadow, so results are correct
// either way.
type Surface struct {
	ctx    *Context
	target RenderTargetDescriptor
	origin SurfaceOrigin

	texture *Texture
	shader  []uint32

	shadow *surface.ImageSurface
	closed bool
}

// NewSurface creates a GPU surface for the given render target.
// Returns an error wrapping ErrSurfaceCreation when the target
// dimensions are invalid or resource creation fails.
func NewSurface(ctx *Context, target RenderTargetDescriptor, origin SurfaceOrigin) (*Surface, error) {
	if target.Width <= 0 || target.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d",
			ErrSurfaceCreation, target.Width, target.Height)
	}

	tex, err := NewTexture(ctx, TextureConfig{
		Width:  target.Width,
		Height: target.Height,
		Format: target.Framebuffer.Format,
		Label:  "uik-surface",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreation, err)
	}

	shader, err := CompileCircleShader()
	if err != nil {
		tex.Close()
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreation, err)
	}

	logger().Debug("gpu: surface created",
		"width", target.Width,
		"height", target.Height,
		"origin", origin.String())

	return &Surface{
		ctx:     ctx,
		target:  target,
		origin:  origin,
		texture: tex,
		shader:  shader,
		shadow:  surface.NewImageSurface(target.Width, target.Height),
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.target.Width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.target.Height
}

// Origin returns the coordinate origin of the surface.
func (s *Surface) Origin() SurfaceOrigin {
	return s.origin
}

// Clear fills the entire surface with the given color.
func (s *Surface) Clear(c color.Color) {
	if s.closed {
		return
	}
	s.shadow.Clear(c)
}

// FillCircle fills a circle centered at (cx, cy) with the given radius.
func (s *Surface) FillCircle(cx, cy, radius float64, style surface.FillStyle) {
	if s.closed {
		return
	}
	s.shadow.FillCircle(cx, cy, radius, style)
}

// Flush uploads the shadow pixels to the GPU texture.
func (s *Surface) Flush() error {
	if s.closed {
		return nil
	}
	img := s.shadow.Image()
	if img == nil {
		return nil
	}
	if err := s.texture.Upload(img.Pix); err != nil {
		return fmt.Errorf("gpu: flush: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current surface contents.
// Returns nil if the surface is closed.
func (s *Surface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	return s.shadow.Snapshot()
}

// Close releases the texture and shadow surface. Idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.texture.Close()
	s.texture = nil
	s.shader = nil
	err := s.shadow.Close()
	s.shadow = nil
	return err
}

// Verify Surface implements surface.Surface.
var _ surface.Surface = (*Surface)(nil)
