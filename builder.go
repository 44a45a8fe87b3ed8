// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "fmt"

// Builder declares the dependencies of exactly one pass. A Builder is handed
// to the setup function of AddPass and is only valid until that function
// returns.
type Builder struct {
	graph *Graph
	pass  int
	name  string

	// created holds handles created by this pass that were not yet written.
	created handleSet
	closed  bool
}

// Create declares a new transient resource of kind T described by desc and
// returns the handle of its first version. The resource is owned by this
// pass once the pass writes the returned handle; only owned resources are
// materialized.
//
// Example:
//
//	data.Color = framegraph.Create[halres.Texture](b, "gbuffer.color", colorDesc)
//	data.Color = b.Write(data.Color)
func Create[T, D any, PT resourcePtr[T, D]](b *Builder, name string, desc D) Handle {
	b.mustBeOpen("Create")
	h := b.graph.newResource(name, &resourceModel[T, D, PT]{desc: desc}, false)
	b.created.add(h)
	return h
}

// Read declares that the pass consumes h. Declaring the same handle twice is
// a no-op. Read returns h unchanged.
func (b *Builder) Read(h Handle) Handle {
	b.mustBeOpen("Read")
	b.graph.node(h)
	return b.node().reads.add(h)
}

// Write declares that the pass produces h and returns the handle that now
// names the written value. Callers must use the returned handle for every
// later reference to the resource.
//
// Writing a resource the pass created mutates it in place. Writing any other
// resource records a read of h and mints the next version of the resource.
// Writing an imported resource marks the pass as having a side effect.
func (b *Builder) Write(h Handle) Handle {
	b.mustBeOpen("Write")
	g := b.graph
	entry := g.entry(h)
	p := b.node()

	if entry.imported {
		p.sideEffect = true
	}

	if b.created.contains(h) {
		p.creates.add(h)
	}
	if p.creates.contains(h) {
		return p.writes.add(h)
	}

	p.reads.add(h)
	next := g.newVersion(h)
	return b.node().writes.add(next)
}

// SetSideEffect marks the pass as observable outside the graph, which
// exempts it from culling. Use it for presentation, readback or debug output.
func (b *Builder) SetSideEffect() {
	b.mustBeOpen("SetSideEffect")
	b.node().sideEffect = true
}

// Name returns the name of the pass being declared.
func (b *Builder) Name() string {
	return b.name
}

func (b *Builder) node() *passNode {
	return &b.graph.passes[b.pass]
}

func (b *Builder) mustBeOpen(op string) {
	if b.closed {
		panic(fmt.Errorf("%w: Builder.%s after setup of pass %q returned", ErrWrongPhase, op, b.name))
	}
}
