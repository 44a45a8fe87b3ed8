// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// The graph never inspects the device: Execute forwards it to every
// Resource.Create/Destroy call and to every pass callback. It is an alias
// for gpucontext.DeviceProvider so hosts like gogpu.App can be passed
// directly.
type DeviceHandle = gpucontext.DeviceProvider

// CommandEncoder is the command-submission handle handed to pass callbacks.
// It may be nil when the frame is executed without an encoder.
type CommandEncoder = hal.CommandEncoder

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for graphs whose resources do not need a GPU, and in tests.
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

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
