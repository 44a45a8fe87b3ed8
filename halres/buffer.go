// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halres

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/framegraph"
)

// copyBufferAlignment is the size granularity of buffer copies.
const copyBufferAlignment uint64 = 4

// BufferDesc describes a transient buffer.
type BufferDesc struct {
	Label string

	// Size in bytes. Rounded up to a multiple of 4 on creation.
	Size uint64

	Usage gputypes.BufferUsage

	// MappedAtCreation creates the buffer pre-mapped for writing. Requires
	// MapWrite or CopyDst usage.
	MappedAtCreation bool
}

// AlignedSize returns Size rounded up to the copy alignment.
func (d BufferDesc) AlignedSize() uint64 {
	return (d.Size + copyBufferAlignment - 1) &^ (copyBufferAlignment - 1)
}

// Buffer is a HAL buffer.
type Buffer struct {
	Buffer hal.Buffer
	// Size is the allocated size after alignment.
	Size uint64
}

// Create validates desc and allocates the buffer.
func (b *Buffer) Create(device framegraph.DeviceHandle, desc BufferDesc) error {
	if desc.Size == 0 {
		return fmt.Errorf("%w: size is 0", ErrInvalidBufferSize)
	}
	if desc.Usage == 0 {
		return fmt.Errorf("%w: buffer usage is empty", ErrInvalidUsage)
	}
	if desc.MappedAtCreation &&
		!desc.Usage.Contains(gputypes.BufferUsageMapWrite) &&
		!desc.Usage.Contains(gputypes.BufferUsageCopyDst) {
		return fmt.Errorf("%w: MappedAtCreation requires MapWrite or CopyDst usage", ErrInvalidUsage)
	}

	dev, err := HALDevice(device)
	if err != nil {
		return err
	}

	size := desc.AlignedSize()
	buf, err := dev.CreateBuffer(&hal.BufferDescriptor{
		Label:            desc.Label,
		Size:             size,
		Usage:            desc.Usage,
		MappedAtCreation: desc.MappedAtCreation,
	})
	if err != nil {
		return fmt.Errorf("create buffer %q: %w", desc.Label, err)
	}

	b.Buffer = buf
	b.Size = size
	framegraph.Logger().Debug("halres: buffer created", "label", desc.Label, "size", size)
	return nil
}

// Destroy releases the buffer.
func (b *Buffer) Destroy(device framegraph.DeviceHandle, _ BufferDesc) {
	dev, err := HALDevice(device)
	if err != nil || b.Buffer == nil {
		return
	}
	buf := b.Buffer
	b.Buffer, b.Size = nil, 0
	release(device, func() { dev.DestroyBuffer(buf) })
}
