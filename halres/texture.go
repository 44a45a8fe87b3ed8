// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halres

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/framegraph"
)

// TextureDesc describes a transient texture.
// This mirrors the WebGPU GPUTextureDescriptor specification.
type TextureDesc struct {
	// Label is an optional debug label.
	Label string

	Width  uint32
	Height uint32

	// DepthOrArrayLayers is the depth of 3D textures or the array layer count.
	// Use 1 for regular 2D textures.
	DepthOrArrayLayers uint32

	// MipLevelCount is the number of mipmap levels. Use 1 for no mipmaps.
	MipLevelCount uint32

	// SampleCount is the number of samples for multisampling.
	SampleCount uint32

	Format gputypes.TextureFormat
	Usage  gputypes.TextureUsage
}

// DefaultTextureDesc returns a single-sample 2D render target that can also be
// sampled by later passes.
func DefaultTextureDesc(width, height uint32, format gputypes.TextureFormat) TextureDesc {
	return TextureDesc{
		Width:              width,
		Height:             height,
		DepthOrArrayLayers: 1,
		MipLevelCount:      1,
		SampleCount:        1,
		Format:             format,
		Usage:              gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	}
}

// Texture is a HAL texture with its default view.
type Texture struct {
	Texture hal.Texture
	View    hal.TextureView
}

// Create allocates the texture and its view.
func (t *Texture) Create(device framegraph.DeviceHandle, desc TextureDesc) error {
	if desc.Width == 0 || desc.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, desc.Width, desc.Height)
	}
	dev, err := HALDevice(device)
	if err != nil {
		return err
	}

	tex, err := dev.CreateTexture(&hal.TextureDescriptor{
		Label: desc.Label,
		Size: hal.Extent3D{
			Width:              desc.Width,
			Height:             desc.Height,
			DepthOrArrayLayers: max(desc.DepthOrArrayLayers, 1),
		},
		MipLevelCount: max(desc.MipLevelCount, 1),
		SampleCount:   max(desc.SampleCount, 1),
		Dimension:     gputypes.TextureDimension2D,
		Format:        desc.Format,
		Usage:         desc.Usage,
	})
	if err != nil {
		return fmt.Errorf("create texture %q: %w", desc.Label, err)
	}

	view, err := dev.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: desc.Label + "_view",
	})
	if err != nil {
		dev.DestroyTexture(tex)
		return fmt.Errorf("create texture view %q: %w", desc.Label, err)
	}

	t.Texture = tex
	t.View = view
	framegraph.Logger().Debug("halres: texture created",
		"label", desc.Label, "width", desc.Width, "height", desc.Height, "format", desc.Format)
	return nil
}

// Destroy releases the view and the texture. Inside RunFrame the release is
// postponed until the frame's submission completed.
func (t *Texture) Destroy(device framegraph.DeviceHandle, desc TextureDesc) {
	dev, err := HALDevice(device)
	if err != nil {
		return
	}
	tex, view := t.Texture, t.View
	t.Texture, t.View = nil, nil

	release(device, func() {
		if view != nil {
			dev.DestroyTextureView(view)
		}
		if tex != nil {
			dev.DestroyTexture(tex)
		}
		framegraph.Logger().Debug("halres: texture released", "label", desc.Label)
	})
}
