// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultFramebufferInfo(t *testing.T) {
	fb := DefaultFramebufferInfo()

	if fb.FBOID != 0 {
		t.Errorf("FBOID = %d, want 0", fb.FBOID)
	}
	if fb.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", fb.Format)
	}
	if fb.Protected {
		t.Error("Protected = true, want false")
	}
}

func TestNewRenderTarget(t *testing.T) {
	rt := NewRenderTarget(1024, 768)

	if rt.Width != 1024 || rt.Height != 768 {
		t.Errorf("target = %dx%d, want 1024x768", rt.Width, rt.Height)
	}
	if rt.SampleCount != 1 {
		t.Errorf("SampleCount = %d, want 1", rt.SampleCount)
	}
	if rt.StencilBits != 8 {
		t.Errorf("StencilBits = %d, want 8", rt.StencilBits)
	}
	if rt.Framebuffer != DefaultFramebufferInfo() {
		t.Errorf("Framebuffer = %+v, want default", rt.Framebuffer)
	}
}

func TestSurfaceOriginString(t *testing.T) {
	tests := []struct {
		origin SurfaceOrigin
		want   string
	}{
		{OriginBottomLeft, "bottom-left"},
		{OriginTopLeft, "top-left"},
		{SurfaceOrigin(7), "Unknown(7)"},
	}

	for _, tt := range tests {
		if got := tt.origin.String(); got != tt.want {
			t.Errorf("SurfaceOrigin(%d).String() = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestNewSurfaceInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative", -1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSurface(nil, NewRenderTarget(tt.width, tt.height), OriginBottomLeft)
			if !errors.Is(err, ErrSurfaceCreation) {
				t.Errorf("NewSurface(%dx%d) = %v, want ErrSurfaceCreation",
					tt.width, tt.height, err)
			}
		})
	}
}

func TestContextCloseIdempotent(t *testing.T) {
	c := &Context{}
	c.Close()
	c.Close()

	if !c.Device().IsZero() || !c.Queue().IsZero() {
		t.Error("closed context holds non-zero IDs")
	}
}
