// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// Context initialization errors. The renderer layer classifies these
// onto its error taxonomy with errors.Is.
var (
	// ErrInterfaceCreation is returned when the graphics API interface
	// (wgpu instance or adapter) cannot be created.
	ErrInterfaceCreation = errors.New("gpu: failed to create graphics interface")

	// ErrContextCreation is returned when the GPU device context cannot
	// be created from the adapter.
	ErrContextCreation = errors.New("gpu: failed to create GPU context")

	// ErrSurfaceCreation is returned when the drawable surface cannot be
	// created on an initialized context.
	ErrSurfaceCreation = errors.New("gpu: failed to create surface")
)

// FramebufferInfo describes the native framebuffer a surface renders
// into. The zero framebuffer (ID 0) is the window-system default.
type FramebufferInfo struct {
	// FBOID is the native framebuffer object ID.
	FBOID uint32

	// Format is the pixel format of the framebuffer.
	Format gputypes.TextureFormat

	// Protected marks protected-content framebuffers.
	Protected bool
}

// DefaultFramebufferInfo returns the framebuffer description for the
// window-system default framebuffer: ID 0, RGBA8, unprotected.
func DefaultFramebufferInfo() FramebufferInfo {
	return FramebufferInfo{
		FBOID:     0,
		Format:    gputypes.TextureFormatRGBA8Unorm,
		Protected: false,
	}
}

// SurfaceOrigin identifies the coordinate origin of a render target.
type SurfaceOrigin uint8

const (
	// OriginBottomLeft places (0,0) at the bottom-left corner, matching
	// the GL convention for window framebuffers.
	OriginBottomLeft SurfaceOrigin = iota

	// OriginTopLeft places (0,0) at the top-left corner.
	OriginTopLeft
)

// String returns a human-readable origin name.
func (o SurfaceOrigin) String() string {
	switch o {
	case OriginBottomLeft:
		return "bottom-left"
	case OriginTopLeft:
		return "top-left"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(o))
	}
}

// RenderTargetDescriptor describes a backend render target bound to a
// framebuffer. Construction is deterministic; dimension validation
// happens at surface creation.
type RenderTargetDescriptor struct {
	// Width is the target width in pixels.
	Width int

	// Height is the target height in pixels.
	Height int

	// SampleCount is the MSAA sample count.
	SampleCount int

	// StencilBits is the stencil buffer depth in bits.
	StencilBits int

	// Framebuffer is the backing framebuffer.
	Framebuffer FramebufferInfo
}

// NewRenderTarget builds a render target descriptor for the given
// dimensions with single sampling, an 8-bit stencil buffer, and the
// default framebuffer.
func NewRenderTarget(width, height int) RenderTargetDescriptor {
	return RenderTargetDescriptor{
		Width:       width,
		Height:      height,
		SampleCount: 1,
		StencilBits: 8,
		Framebuffer: DefaultFramebufferInfo(),
	}
}

// Context holds the GPU resources for the wgpu renderer backend:
// instance, adapter, device, and queue.
//
// Resources are created in order by NewContext and released in reverse
// order by Close. A Context is owned by a single goroutine.
type Context struct {
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	info *GPUInfo

	// provider is set when the device was supplied by a host
	// application rather than created here. Close does not release
	// provider-owned resources.
	provider DeviceHandle
}

// NewContext creates a GPU context by acquiring an instance, requesting
// a high-performance adapter, creating a device, and retrieving its
// queue. Each step's failure wraps the matching sentinel and releases
// anything already acquired.
func NewContext() (*Context, error) {
	c := &Context{}

	// Step 1: instance.
	c.instance = core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	})
	if c.instance == nil {
		return nil, fmt.Errorf("%w: instance unavailable", ErrInterfaceCreation)
	}

	// Step 2: adapter.
	adapterID, err := c.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterfaceCreation, err)
	}
	c.adapter = adapterID

	if info, err := getGPUInfo(adapterID); err == nil {
		c.info = info
		logger().Info("gpu: adapter selected", "gpu", info.String())
	}

	// Step 3: device.
	deviceID, err := createDevice(adapterID, "uik-wgpu-device")
	if err != nil {
		_ = releaseAdapter(adapterID)
		return nil, fmt.Errorf("%w: %w", ErrContextCreation, err)
	}
	c.device = deviceID

	// Step 4: queue.
	queueID, err := getDeviceQueue(deviceID)
	if err != nil {
		_ = releaseDevice(deviceID)
		_ = releaseAdapter(adapterID)
		return nil, fmt.Errorf("%w: %w", ErrContextCreation, err)
	}
	c.queue = queueID

	logger().Info("gpu: context initialized")
	registerSurfaceBackend(c)
	return c, nil
}

// Device returns the GPU device ID. Zero if the context is closed.
func (c *Context) Device() core.DeviceID {
	return c.device
}

// Queue returns the GPU queue ID. Zero if the context is closed.
func (c *Context) Queue() core.QueueID {
	return c.queue
}

// Info returns information about the selected GPU, or nil if adapter
// introspection failed.
func (c *Context) Info() *GPUInfo {
	return c.info
}

// Close releases context resources in reverse order of creation. The
// queue is released with the device. Device and adapter supplied by a
// host provider are left alone. Close is idempotent.
func (c *Context) Close() {
	unregisterSurfaceBackend(c)

	if c.provider == nil {
		if !c.device.IsZero() {
			if err := releaseDevice(c.device); err != nil {
				logger().Warn("gpu: device release failed", "error", err)
			}
		}
		if !c.adapter.IsZero() {
			if err := releaseAdapter(c.adapter); err != nil {
				logger().Warn("gpu: adapter release failed", "error", err)
			}
		}
	}

	c.device = core.DeviceID{}
	c.adapter = core.AdapterID{}
	c.queue = core.QueueID{}
	c.instance = nil
	c.info = nil
	c.provider = nil
}
