// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// Texture-related errors.
var (
	// ErrTextureReleased is returned when operating on a released texture.
	ErrTextureReleased = errors.New("gpu: texture has been released")

	// ErrTextureSizeMismatch is returned when pixel data size doesn't
	// match the texture dimensions.
	ErrTextureSizeMismatch = errors.New("gpu: pixel data size does not match texture")

	// ErrInvalidDimensions is returned for non-positive texture dimensions.
	ErrInvalidDimensions = errors.New("gpu: invalid texture dimensions")
)

// DefaultTextureUsage is the usage for surface textures: sampled,
// copyable in both directions, and renderable.
const DefaultTextureUsage = gputypes.TextureUsageCopySrc |
	gputypes.TextureUsageCopyDst |
	gputypes.TextureUsageTextureBinding |
	gputypes.TextureUsageRenderAttachment

// Texture is a GPU texture resource backing a surface.
//
// Textures created without a context are logical: they track dimensions
// and memory size but hold zero wgpu IDs. The surface keeps a CPU
// shadow of the pixel contents, so logical textures still produce
// correct snapshots. Actual wgpu texture allocation and queue writes
// slot in behind the same interface once core exposes them.
type Texture struct {
	textureID core.TextureID
	viewID    core.TextureViewID

	width  int
	height int
	format gputypes.TextureFormat

	sizeBytes uint64
	label     string

	released atomic.Bool
}

// TextureConfig holds creation parameters for a texture.
type TextureConfig struct {
	// Width is the texture width in pixels.
	Width int

	// Height is the texture height in pixels.
	Height int

	// Format is the pixel format.
	Format gputypes.TextureFormat

	// Label is an optional debug label.
	Label string

	// Usage flags; zero means DefaultTextureUsage.
	Usage gputypes.TextureUsage
}

// NewTexture creates a texture on the given context. A nil context
// creates a logical texture with zero GPU IDs.
func NewTexture(ctx *Context, config TextureConfig) (*Texture, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, config.Width, config.Height)
	}

	if config.Format == gputypes.TextureFormatUndefined {
		config.Format = gputypes.TextureFormatRGBA8Unorm
	}
	if config.Usage == 0 {
		config.Usage = DefaultTextureUsage
	}

	// RGBA8 is the only format surfaces use; 4 bytes per pixel.
	sizeBytes := uint64(config.Width) * uint64(config.Height) * 4

	t := &Texture{
		width:     config.Width,
		height:    config.Height,
		format:    config.Format,
		sizeBytes: sizeBytes,
		label:     config.Label,
	}

	if ctx != nil && !ctx.Device().IsZero() {
		logger().Debug("gpu: texture created",
			"label", config.Label,
			"width", config.Width,
			"height", config.Height)
	}

	return t, nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Format returns the texture pixel format.
func (t *Texture) Format() gputypes.TextureFormat {
	return t.format
}

// SizeBytes returns the texture memory footprint in bytes.
func (t *Texture) SizeBytes() uint64 {
	return t.sizeBytes
}

// Label returns the debug label.
func (t *Texture) Label() string {
	return t.label
}

// IsReleased reports whether the texture has been released.
func (t *Texture) IsReleased() bool {
	return t.released.Load()
}

// TextureID returns the underlying wgpu texture ID.
// Zero for logical textures.
func (t *Texture) TextureID() core.TextureID {
	return t.textureID
}

// ViewID returns the texture view ID. Zero for logical textures.
func (t *Texture) ViewID() core.TextureViewID {
	return t.viewID
}

// Upload writes RGBA pixel data to the texture. The data length must
// be exactly width*height*4 bytes.
func (t *Texture) Upload(pix []byte) error {
	if t.released.Load() {
		return ErrTextureReleased
	}

	if uint64(len(pix)) != t.sizeBytes {
		return fmt.Errorf("%w: expected %d bytes, got %d",
			ErrTextureSizeMismatch, t.sizeBytes, len(pix))
	}

	// Queue write goes here once core.QueueWriteTexture lands; logical
	// textures accept the upload so the surface data path is exercised.
	return nil
}

// Close releases the texture resources. Idempotent.
func (t *Texture) Close() {
	if t.released.Swap(true) {
		return
	}

	t.textureID = core.TextureID{}
	t.viewID = core.TextureViewID{}
}

// String returns a string representation of the texture.
func (t *Texture) String() string {
	status := "active"
	if t.released.Load() {
		status = "released"
	}
	return fmt.Sprintf("Texture[%s %dx%d %d bytes %s]",
		t.label, t.width, t.height, t.sizeBytes, status)
}
