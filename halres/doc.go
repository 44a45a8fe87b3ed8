// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package halres provides framegraph resource kinds backed by the wgpu HAL.
//
// Texture and Buffer implement framegraph.Resource for their descriptor
// types, so they can be created inside pass setup functions:
//
//	d.Color = b.Write(framegraph.Create[halres.Texture](b, "color",
//	    halres.DefaultTextureDesc(w, h, gputypes.TextureFormatBGRA8Unorm)))
//
// The device handed to Execute must expose HAL objects, either because it is
// a Provider created with NewProvider or because it implements
// HalDevice() any and HalQueue() any like gogpu.App does.
//
// RunFrame executes a compiled graph into a single command buffer, submits
// it and waits for the GPU. Resources the graph destroys during the frame are
// released only after the submission completed.
package halres
