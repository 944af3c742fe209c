// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewTextureDefaults(t *testing.T) {
	tex, err := NewTexture(nil, TextureConfig{Width: 64, Height: 32, Label: "test"})
	if err != nil {
		t.Fatalf("NewTexture() = %v", err)
	}
	defer tex.Close()

	if tex.Width() != 64 || tex.Height() != 32 {
		t.Errorf("texture = %dx%d, want 64x32", tex.Width(), tex.Height())
	}
	if tex.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", tex.Format())
	}
	if got, want := tex.SizeBytes(), uint64(64*32*4); got != want {
		t.Errorf("SizeBytes = %d, want %d", got, want)
	}
	if tex.Label() != "test" {
		t.Errorf("Label = %q, want %q", tex.Label(), "test")
	}
	if !tex.TextureID().IsZero() || !tex.ViewID().IsZero() {
		t.Error("logical texture holds non-zero wgpu IDs")
	}
}

func TestNewTextureInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := NewTexture(nil, TextureConfig{Width: dims[0], Height: dims[1]})
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewTexture(%dx%d) = %v, want ErrInvalidDimensions",
				dims[0], dims[1], err)
		}
	}
}

func TestTextureUpload(t *testing.T) {
	tex, err := NewTexture(nil, TextureConfig{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("NewTexture() = %v", err)
	}
	defer tex.Close()

	if err := tex.Upload(make([]byte, 4*4*4)); err != nil {
		t.Errorf("Upload() = %v", err)
	}

	err = tex.Upload(make([]byte, 7))
	if !errors.Is(err, ErrTextureSizeMismatch) {
		t.Errorf("Upload(short) = %v, want ErrTextureSizeMismatch", err)
	}
}

func TestTextureUploadAfterClose(t *testing.T) {
	tex, err := NewTexture(nil, TextureConfig{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewTexture() = %v", err)
	}

	tex.Close()
	tex.Close() // idempotent

	if !tex.IsReleased() {
		t.Error("IsReleased() = false after Close")
	}
	if err := tex.Upload(make([]byte, 2*2*4)); !errors.Is(err, ErrTextureReleased) {
		t.Errorf("Upload() after Close = %v, want ErrTextureReleased", err)
	}
}
