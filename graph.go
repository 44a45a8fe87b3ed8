// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// phase is the stage of the current graph generation.
type phase uint8

const (
	phaseDeclare phase = iota
	phaseCompiled
	phaseExecuted
)

// Graph is a per-frame render-pass dependency graph.
//
// A frame goes through three strictly ordered phases: passes are declared
// with AddPass (and resources with Import or Create), Compile culls unused
// passes and computes resource lifetimes, and Execute runs the surviving
// passes in declaration order while materializing and destroying transient
// resources around their first and last use. Clear starts the next frame.
//
// Execution order is declaration order; the graph never re-sorts passes.
//
// Graph is NOT safe for concurrent use.
type Graph struct {
	opts graphOptions

	passes  []passNode
	nodes   []resourceNode
	entries []resourceEntry

	phase phase
	stats FrameStats
}

// NewGraph creates an empty graph.
func NewGraph(opts ...GraphOption) *Graph {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Graph{
		opts:    o,
		passes:  make([]passNode, 0, o.passes),
		nodes:   make([]resourceNode, 0, o.resources),
		entries: make([]resourceEntry, 0, o.resources),
	}
}

// Import registers an externally owned resource, such as a swap chain image,
// and returns the handle of its first version. Imported resources are never
// materialized or destroyed by the graph, and any pass writing one is
// treated as having a side effect.
func Import[T, D any, PT resourcePtr[T, D]](g *Graph, name string, desc D, resource T) Handle {
	g.mustDeclare("Import")
	return g.newResource(name, &resourceModel[T, D, PT]{desc: desc, resource: resource}, true)
}

// AddPass declares a pass. setup runs immediately with a Builder bound to the
// new pass and a zero payload, and declares what the pass creates, reads and
// writes. exec is stored and called by Execute if the pass survives culling.
//
// AddPass returns a pointer to the payload so later passes can consume the
// handles it produced. The pointer stays valid until Clear.
//
// Example:
//
//	type gbufferData struct{ Color framegraph.Handle }
//
//	gbuf := framegraph.AddPass(g, "gbuffer",
//	    func(b *framegraph.Builder, d *gbufferData) {
//	        d.Color = b.Write(framegraph.Create[halres.Texture](b, "color", desc))
//	    },
//	    func(d *gbufferData, res *framegraph.Resources, dev framegraph.DeviceHandle, cmd framegraph.CommandEncoder) error {
//	        tex := framegraph.Get[halres.Texture](res, d.Color)
//	        // record commands targeting tex
//	        return nil
//	    })
func AddPass[D any](g *Graph, name string, setup SetupFunc[D], exec ExecuteFunc[D]) *D {
	g.mustDeclare("AddPass")

	p := &pass[D]{fn: exec}
	index := g.newPass(name, p)

	b := &Builder{graph: g, pass: index, name: name}
	if setup != nil {
		setup(b, &p.data)
	}
	b.closed = true

	return &p.data
}

// Compile analyzes the declared graph. It seeds reference counts from the
// read and write edges, culls every pass whose outputs are unreachable from
// a side-effecting pass, and records for each resource the pass that
// materializes it and the last pass that uses it.
//
// Compile only updates metadata; calling it again recomputes everything.
func (g *Graph) Compile() {
	if g.phase == phaseExecuted {
		panic(fmt.Errorf("%w: Compile after Execute; call Clear first", ErrWrongPhase))
	}
	g.reset()
	g.seed()
	g.cull()
	g.assignLifetimes()
	g.phase = phaseCompiled
}

// reset clears all compile-time metadata.
func (g *Graph) reset() {
	for i := range g.nodes {
		g.nodes[i].refCount = 0
		g.nodes[i].producer = noPass
	}
	for i := range g.entries {
		g.entries[i].producer = noPass
		g.entries[i].last = noPass
	}
	for i := range g.passes {
		g.passes[i].culled = false
		g.passes[i].destroys = g.passes[i].destroys[:0]
	}
}

// seed initializes pass and resource reference counts and version producers.
// A pass reading a version it produced itself is not a consumer of it.
func (g *Graph) seed() {
	for i := range g.passes {
		p := &g.passes[i]
		p.refCount = int32(len(p.writes)) //nolint:gosec // bounded by the node pool size
		for _, h := range p.writes {
			g.nodes[h].producer = int32(i) //nolint:gosec // bounded by the pass pool size
		}
	}
	for i := range g.passes {
		for _, h := range g.passes[i].reads {
			if !g.selfRead(i, h) {
				g.nodes[h].refCount++
			}
		}
	}
}

func (g *Graph) selfRead(pass int, h Handle) bool {
	return g.nodes[h].producer == int32(pass) //nolint:gosec // bounded by the pass pool size
}

// cull removes passes that do not contribute to any side-effecting output.
//
// Every version nobody reads releases one reference on its producer; a
// producer without references left is culled and releases one reference on
// every version it reads, which may cascade further upstream.
func (g *Graph) cull() {
	var unreferenced []Handle
	for i := range g.nodes {
		if g.nodes[i].refCount == 0 {
			unreferenced = append(unreferenced, Handle(i)) //nolint:gosec // bounded by the node pool size
		}
	}

	for len(unreferenced) > 0 {
		h := unreferenced[len(unreferenced)-1]
		unreferenced = unreferenced[:len(unreferenced)-1]

		producer := g.nodes[h].producer
		if producer == noPass {
			continue
		}
		p := &g.passes[producer]
		if p.sideEffect {
			continue
		}

		p.refCount--
		if p.refCount > 0 {
			continue
		}

		p.culled = true
		g.logger().Debug("framegraph: pass culled", "pass", p.name)
		for _, r := range p.reads {
			if g.selfRead(int(producer), r) {
				continue
			}
			n := &g.nodes[r]
			n.refCount--
			if n.refCount == 0 {
				unreferenced = append(unreferenced, r)
			}
		}
	}
}

// assignLifetimes records the materializing pass and the last user of every
// resource. Culled passes are ignored so that no resource is materialized or
// destroyed around a pass that never runs.
func (g *Graph) assignLifetimes() {
	for i := range g.passes {
		p := &g.passes[i]
		p.state = PassCompiled
		if !p.runnable() {
			continue
		}

		index := int32(i) //nolint:gosec // bounded by the pass pool size
		for _, h := range p.creates {
			g.entry(h).producer = index
		}
		for _, set := range [...]handleSet{p.creates, p.reads, p.writes} {
			for _, h := range set {
				g.entry(h).last = index
			}
		}
	}

	for rid := range g.entries {
		e := &g.entries[rid]
		if e.last == noPass || e.imported {
			continue
		}
		last := &g.passes[e.last]
		last.destroys = append(last.destroys, uint32(rid)) //nolint:gosec // bounded by the resource pool size
	}
}

// Execute runs the compiled frame without a command encoder.
// See ExecuteWithEncoder.
func (g *Graph) Execute(device DeviceHandle) error {
	return g.ExecuteWithEncoder(device, nil)
}

// ExecuteWithEncoder runs every pass that survived culling, in declaration
// order. Before a pass runs, the resources it owns are materialized; after
// its callback returns, every transient resource whose last use is that pass
// is destroyed. Imported resources are never touched.
//
// device and cmd are passed unmodified to resources and pass callbacks.
//
// A failing Resource.Create or pass callback does not stop the frame: all
// failures are collected and returned together, in declaration order. Destroy
// is issued once for every resource whose Create was issued, failed or not.
func (g *Graph) ExecuteWithEncoder(device DeviceHandle, cmd CommandEncoder) error {
	switch g.phase {
	case phaseDeclare:
		panic(fmt.Errorf("%w: Execute before Compile", ErrWrongPhase))
	case phaseExecuted:
		panic(fmt.Errorf("%w: Execute called twice; call Clear first", ErrWrongPhase))
	}
	g.phase = phaseExecuted

	log := g.logger()
	obs := g.opts.observer
	var errs []error

	for i := range g.passes {
		p := &g.passes[i]
		if !p.runnable() {
			p.state = PassSkipped
			obs.PassCulled(p.name)
			continue
		}

		for _, h := range p.creates {
			e := g.entry(h)
			err := e.model.create(device)
			e.created = true
			obs.ResourceMaterialized(e.name, err)
			if err != nil {
				log.Warn("framegraph: materialize failed", "resource", e.name, "pass", p.name, "err", err)
				errs = append(errs, fmt.Errorf("%w: resource %q in pass %q: %w", ErrMaterialize, e.name, p.name, err))
				continue
			}
			g.stats.Materialized++
			log.Debug("framegraph: materialized", "resource", e.name, "pass", p.name)
		}

		res := &Resources{graph: g, pass: i}
		start := time.Now()
		err := p.exec.execute(res, device, cmd)
		elapsed := time.Since(start)
		res.closed = true

		p.state = PassExecuted
		g.stats.Executed++
		obs.PassExecuted(p.name, elapsed, err)
		if err != nil {
			log.Warn("framegraph: pass failed", "pass", p.name, "err", err)
			errs = append(errs, fmt.Errorf("%w: %q: %w", ErrPassFailed, p.name, err))
		}

		for _, rid := range p.destroys {
			e := &g.entries[rid]
			if !e.created {
				continue
			}
			e.model.destroy(device)
			e.created = false
			g.stats.Destroyed++
			obs.ResourceDestroyed(e.name)
			log.Debug("framegraph: destroyed", "resource", e.name, "pass", p.name)
		}
	}

	return errors.Join(errs...)
}

// Clear discards every pass, resource and handle. The next declaration
// starts from an empty handle space. Blackboards are not affected.
func (g *Graph) Clear() {
	clear(g.passes)
	clear(g.nodes)
	clear(g.entries)
	g.passes = g.passes[:0]
	g.nodes = g.nodes[:0]
	g.entries = g.entries[:0]
	g.phase = phaseDeclare
	g.stats = FrameStats{}
}

// newPass appends a pass node and returns its index.
func (g *Graph) newPass(name string, exec passConcept) int {
	id := len(g.passes)
	g.passes = append(g.passes, passNode{
		graphNode: graphNode{name: name, id: uint32(id)}, //nolint:gosec // pool size fits uint32
		exec:      exec,
	})
	return id
}

// newResource appends a resource value and its version-0 node.
func (g *Graph) newResource(name string, model resourceConcept, imported bool) Handle {
	rid := uint32(len(g.entries)) //nolint:gosec // pool size fits uint32
	g.entries = append(g.entries, resourceEntry{
		name:     name,
		rid:      rid,
		imported: imported,
		model:    model,
		producer: noPass,
		last:     noPass,
	})
	return g.newNode(name, rid, 0)
}

// newVersion appends the next version node of the resource behind h.
func (g *Graph) newVersion(h Handle) Handle {
	n := g.node(h)
	e := &g.entries[n.rid]
	e.version++
	return g.newNode(n.name, n.rid, e.version)
}

func (g *Graph) newNode(name string, rid, version uint32) Handle {
	h := Handle(len(g.nodes)) //nolint:gosec // pool size fits uint32
	g.nodes = append(g.nodes, resourceNode{
		graphNode: graphNode{name: name, id: uint32(h)},
		rid:       rid,
		version:   version,
		producer:  noPass,
	})
	return h
}

// node returns the resource node for h or panics with ErrInvalidHandle.
func (g *Graph) node(h Handle) *resourceNode {
	if int(h) >= len(g.nodes) {
		panic(fmt.Errorf("%w: %d (graph has %d resource nodes)", ErrInvalidHandle, h, len(g.nodes)))
	}
	return &g.nodes[h]
}

// entry returns the resource value behind h.
func (g *Graph) entry(h Handle) *resourceEntry {
	return &g.entries[g.node(h).rid]
}

func (g *Graph) mustDeclare(op string) {
	if g.phase != phaseDeclare {
		panic(fmt.Errorf("%w: %s after Compile; call Clear first", ErrWrongPhase, op))
	}
}

func (g *Graph) logger() *slog.Logger {
	if g.opts.logger != nil {
		return g.opts.logger
	}
	return Logger()
}
