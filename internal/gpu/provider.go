// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from a host application.
//
// When the framework runs embedded in a larger GPU application, the
// host already owns a device and queue. Passing its DeviceHandle to a
// Context via SetDeviceProvider shares those resources instead of
// creating a second device; Close then leaves the host's resources
// untouched.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, keeping the
// package compatible with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with nil implementations, used
// where no host device exists.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns zero-value adapter metadata for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

var _ DeviceHandle = NullDeviceHandle{}

// SetDeviceProvider marks the context's device as host-owned. After
// this call Close will not release the device or adapter.
func (c *Context) SetDeviceProvider(p DeviceHandle) {
	c.provider = p
}

// Provider returns the host device provider, or nil when the context
// owns its device.
func (c *Context) Provider() DeviceHandle {
	return c.provider
}
