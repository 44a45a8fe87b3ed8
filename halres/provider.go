// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halres

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/framegraph"
)

// halProvider is implemented by hosts sharing their HAL device and queue.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// HALDevice extracts the hal.Device behind a device handle.
func HALDevice(device framegraph.DeviceHandle) (hal.Device, error) {
	hp, ok := device.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	d, ok := hp.HalDevice().(hal.Device)
	if !ok || d == nil {
		return nil, ErrNoHAL
	}
	return d, nil
}

// HALQueue extracts the hal.Queue behind a device handle.
func HALQueue(device framegraph.DeviceHandle) (hal.Queue, error) {
	hp, ok := device.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	q, ok := hp.HalQueue().(hal.Queue)
	if !ok || q == nil {
		return nil, ErrNoHAL
	}
	return q, nil
}

// Provider is a framegraph.DeviceHandle over raw HAL objects, for hosts that
// open their own device.
type Provider struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat
}

// NewProvider wraps a HAL device and queue. The provider does not own them.
func NewProvider(device hal.Device, queue hal.Queue) *Provider {
	return &Provider{device: device, queue: queue}
}

// WithSurfaceFormat returns a copy of p reporting format as its surface format.
func (p *Provider) WithSurfaceFormat(format gputypes.TextureFormat) *Provider {
	c := *p
	c.format = format
	return &c
}

// Device returns the wrapped device.
func (p *Provider) Device() gpucontext.Device { return deviceRef{p.device} }

// Queue returns the wrapped queue.
func (p *Provider) Queue() gpucontext.Queue { return p.queue }

// Adapter returns nil; the adapter is not retained.
func (p *Provider) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the configured surface format.
func (p *Provider) SurfaceFormat() gputypes.TextureFormat { return p.format }

// HalDevice returns the wrapped hal.Device.
func (p *Provider) HalDevice() any { return p.device }

// HalQueue returns the wrapped hal.Queue.
func (p *Provider) HalQueue() any { return p.queue }

// deviceRef presents a hal.Device as a gpucontext.Device. Polling is a no-op
// because RunFrame waits on fences explicitly.
type deviceRef struct {
	hal.Device
}

func (deviceRef) Poll(bool) {}

var (
	_ framegraph.DeviceHandle = (*Provider)(nil)
	_ halProvider             = (*Provider)(nil)
)
