// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package framegraph provides a per-frame render-pass dependency graph and
// resource-lifetime scheduler.
//
// # Overview
//
// Passes declare which logical resources they create, read and write. The
// graph then culls passes whose outputs are never consumed, computes the
// lifetime of every transient resource, and materializes and destroys the
// backing objects immediately around their first and last use.
//
// Every frame goes through three phases:
//
//  1. Declare: Import external resources and AddPass each pass. The setup
//     function of a pass runs immediately and uses a Builder to Create, Read
//     and Write resources.
//  2. Compile: ref counts are seeded from the declared edges, unreachable
//     passes are culled and lifetimes are assigned.
//  3. Execute: surviving passes run in declaration order.
//
// Clear discards the frame and restarts the handle space.
//
// # Versions
//
// A Handle names one version of one resource. Writing a resource a pass did
// not create reads the current version and returns a new handle for the next
// one; the old handle keeps naming the old version. Writing a resource the
// pass created mutates it in place. Writing an imported resource, such as a
// swap chain image, marks the pass as having a side effect, so it is never
// culled.
//
// # Backends
//
// The graph never talks to a GPU itself. Resource kinds implement Resource[D]
// and receive the DeviceHandle passed to Execute; pass callbacks receive the
// same device and the CommandEncoder given to ExecuteWithEncoder. The halres
// package provides texture and buffer kinds for the wgpu HAL.
//
// # Quick Start
//
//	g := framegraph.NewGraph()
//	backbuffer := framegraph.Import(g, "backbuffer", swapDesc, swapTexture)
//
//	gbuf := framegraph.AddPass(g, "gbuffer",
//	    func(b *framegraph.Builder, d *gbufferData) {
//	        d.Albedo = b.Write(framegraph.Create[halres.Texture](b, "albedo", albedoDesc))
//	    },
//	    drawGBuffer)
//
//	framegraph.AddPass(g, "lighting",
//	    func(b *framegraph.Builder, d *lightingData) {
//	        d.Albedo = b.Read(gbuf.Albedo)
//	        d.Target = b.Write(backbuffer)
//	    },
//	    drawLighting)
//
//	g.Compile()
//	err := g.Execute(device)
//	g.Clear()
//
// Cross-pass handles that are not part of any payload can be shared through a
// blackboard.Blackboard.
//
// # Thread Safety
//
// A Graph must be used from one goroutine. Only SetLogger and Logger are safe
// for concurrent use.
package framegraph
