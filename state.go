package uik

import (
	"github.com/gogpu/uik/internal/gpu"
	"github.com/gogpu/uik/surface"
)

// rendererState bundles everything an initialized renderer holds: the
// GPU context (nil for software rendering), the drawable surface, the
// transform stack, and the surface dimensions.
//
// State is created whole by the backend's init path and swapped in
// atomically; a renderer either has a complete state or none at all.
type rendererState struct {
	ctx        *gpu.Context
	surface    surface.Surface
	transforms *TransformStack
	width      int
	height     int
}

// drawTestCircle draws the diagnostic circle: centered, radius a
// quarter of the smaller dimension, steel blue, anti-aliased.
func (s *rendererState) drawTestCircle() {
	cx := float64(s.width) / 2
	cy := float64(s.height) / 2
	radius := float64(min(s.width, s.height)) / 4

	s.surface.FillCircle(cx, cy, radius, surface.FillStyle{
		Color:     RGB(0.3, 0.5, 0.8).Color(),
		Antialias: true,
	})
}

// drawAnimatedCircle clears the surface to white and draws the
// time-animated circle at (200, 200) with radius 100. Each color
// channel oscillates sinusoidally with a fixed phase offset.
func (s *rendererState) drawAnimatedCircle(time float64) {
	s.surface.Clear(White.Color())
	s.surface.FillCircle(200, 200, 100, surface.FillStyle{
		Color:     AnimatedColor(time).Color(),
		Antialias: true,
	})
}

// close releases the surface and GPU context.
func (s *rendererState) close() {
	if s.surface != nil {
		if err := s.surface.Close(); err != nil {
			Logger().Warn("renderer: surface close failed", "error", err)
		}
		s.surface = nil
	}
	if s.ctx != nil {
		s.ctx.Close()
		s.ctx = nil
	}
}
