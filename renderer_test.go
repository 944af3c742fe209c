package uik

import (
	"testing"
)

func TestAvailableRenderers(t *testing.T) {
	names := AvailableRenderers()

	found := make(map[string]bool, len(names))
	for _, n := range names {
		found[n] = true
	}
	if !found[RendererSoftware] {
		t.Errorf("AvailableRenderers() = %v, missing %q", names, RendererSoftware)
	}
	if !found[RendererWGPU] {
		t.Errorf("AvailableRenderers() = %v, missing %q", names, RendererWGPU)
	}
}

func TestNewRendererByName(t *testing.T) {
	r := NewRendererByName(RendererSoftware)
	if r == nil {
		t.Fatal("NewRendererByName(software) = nil")
	}
	if got := r.Name(); got != RendererSoftware {
		t.Errorf("Name() = %q, want %q", got, RendererSoftware)
	}

	if r := NewRendererByName("no-such-backend"); r != nil {
		t.Errorf("NewRendererByName(unknown) = %v, want nil", r)
	}
}

func TestNewRendererPrefersRegisteredBackend(t *testing.T) {
	r := NewRenderer()
	if r == nil {
		t.Fatal("NewRenderer() = nil with backends registered")
	}
	// wgpu registers first in the priority list.
	if got := r.Name(); got != RendererWGPU {
		t.Errorf("Name() = %q, want %q", got, RendererWGPU)
	}
}

func TestRendererOptions(t *testing.T) {
	o := defaultRendererOptions()
	if o.width != DefaultWidth || o.height != DefaultHeight {
		t.Errorf("defaults = %dx%d, want %dx%d", o.width, o.height, DefaultWidth, DefaultHeight)
	}
	if o.background != White {
		t.Errorf("default background = %v, want white", o.background)
	}

	for _, opt := range []RendererOption{
		WithSize(320, 240),
		WithBackground(Black),
		WithSurfaceBackend("image"),
	} {
		opt(&o)
	}

	if o.width != 320 || o.height != 240 {
		t.Errorf("WithSize: %dx%d, want 320x240", o.width, o.height)
	}
	if o.background != Black {
		t.Errorf("WithBackground: %v, want black", o.background)
	}
	if o.surfaceBackend != "image" {
		t.Errorf("WithSurfaceBackend: %q, want %q", o.surfaceBackend, "image")
	}
}
