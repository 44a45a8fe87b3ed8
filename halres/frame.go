// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halres

import (
	"fmt"
	"time"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/framegraph"
)

// submitTimeout bounds the wait for a submitted frame.
const submitTimeout = 5 * time.Second

// releaser postpones the release of GPU objects.
type releaser interface {
	Release(fn func())
}

// release runs fn now, or hands it to the frame scope when called during
// RunFrame.
func release(device framegraph.DeviceHandle, fn func()) {
	if r, ok := device.(releaser); ok {
		r.Release(fn)
		return
	}
	fn()
}

// frameScope is the device handle seen by resources and passes during
// RunFrame. It collects releases until the submission completed.
type frameScope struct {
	framegraph.DeviceHandle
	device   hal.Device
	queue    hal.Queue
	releases []func()
}

func (s *frameScope) HalDevice() any { return s.device }
func (s *frameScope) HalQueue() any  { return s.queue }

func (s *frameScope) Release(fn func()) {
	s.releases = append(s.releases, fn)
}

func (s *frameScope) releaseAll() {
	for _, fn := range s.releases {
		fn()
	}
	s.releases = nil
}

// RunFrame executes a compiled graph into one command buffer labeled label,
// submits it on the provider's queue and waits for completion.
//
// Pass callbacks receive the frame's hal.CommandEncoder. If any pass or
// resource fails, the encoding is discarded and the joined Execute error is
// returned. GPU objects destroyed by the graph are released after the wait,
// or after the discard on failure.
func RunFrame(g *framegraph.Graph, provider framegraph.DeviceHandle, label string) error {
	device, err := HALDevice(provider)
	if err != nil {
		return err
	}
	queue, err := HALQueue(provider)
	if err != nil {
		return err
	}

	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: label + "_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	scope := &frameScope{DeviceHandle: provider, device: device, queue: queue}
	defer scope.releaseAll()

	start := time.Now()
	if err := g.ExecuteWithEncoder(scope, encoder); err != nil {
		encoder.DiscardEncoding()
		return err
	}

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	fence, err := device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer device.DestroyFence(fence)

	if err := queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := device.Wait(fence, 1, submitTimeout)
	if err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if !fenceOK {
		return fmt.Errorf("%w: frame %q after %v", ErrGPUTimeout, label, submitTimeout)
	}

	framegraph.Logger().Debug("halres: frame submitted",
		"label", label, "elapsed", time.Since(start), "released", len(scope.releases))
	return nil
}
