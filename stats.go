// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "fmt"

// FrameStats summarizes the current graph generation.
type FrameStats struct {
	// Passes is the number of declared passes.
	Passes int

	// Culled is the number of passes removed by Compile. Zero before Compile.
	Culled int

	// Executed is the number of pass callbacks run by Execute.
	Executed int

	// Resources is the number of logical resources, imported ones included.
	Resources int

	// Imported is the number of imported resources.
	Imported int

	// Versions is the number of resource nodes, one per version.
	Versions int

	// Materialized is the number of successful Resource.Create calls.
	Materialized int

	// Destroyed is the number of Resource.Destroy calls.
	Destroyed int
}

// String returns a human-readable string of frame stats.
func (s FrameStats) String() string {
	return fmt.Sprintf("Frame[%d passes (%d culled, %d executed), %d resources (%d imported, %d versions), %d materialized, %d destroyed]",
		s.Passes, s.Culled, s.Executed,
		s.Resources, s.Imported, s.Versions,
		s.Materialized, s.Destroyed,
	)
}

// Stats returns statistics about the current generation.
func (g *Graph) Stats() FrameStats {
	s := g.stats
	s.Passes = len(g.passes)
	s.Resources = len(g.entries)
	s.Versions = len(g.nodes)
	for i := range g.entries {
		if g.entries[i].imported {
			s.Imported++
		}
	}
	if g.phase != phaseDeclare {
		for i := range g.passes {
			if !g.passes[i].runnable() {
				s.Culled++
			}
		}
	}
	return s
}

// PassInfo is a snapshot of one declared pass.
type PassInfo struct {
	Name       string
	State      PassState
	SideEffect bool
	// Culled is only meaningful after Compile.
	Culled   bool
	RefCount int
	Creates  []Handle
	Reads    []Handle
	Writes   []Handle
}

// ResourceInfo is a snapshot of one resource version.
type ResourceInfo struct {
	Handle   Handle
	Name     string
	Version  uint32
	Imported bool
	// RefCount is the number of surviving readers after Compile.
	RefCount int
	// Writer is the pass that wrote this version, empty if none.
	Writer string
	// Creator and Last are the passes bounding the lifetime of the logical
	// resource, empty before Compile or when no running pass uses it.
	Creator     string
	Last        string
	Description string
}

// Passes returns a snapshot of every declared pass in declaration order.
func (g *Graph) Passes() []PassInfo {
	out := make([]PassInfo, 0, len(g.passes))
	for i := range g.passes {
		p := &g.passes[i]
		out = append(out, PassInfo{
			Name:       p.name,
			State:      p.state,
			SideEffect: p.sideEffect,
			Culled:     g.phase != phaseDeclare && !p.runnable(),
			RefCount:   int(p.refCount),
			Creates:    append([]Handle(nil), p.creates...),
			Reads:      append([]Handle(nil), p.reads...),
			Writes:     append([]Handle(nil), p.writes...),
		})
	}
	return out
}

// Resources returns a snapshot of every resource version in handle order.
func (g *Graph) Resources() []ResourceInfo {
	out := make([]ResourceInfo, 0, len(g.nodes))
	for i := range g.nodes {
		n := &g.nodes[i]
		e := &g.entries[n.rid]
		out = append(out, ResourceInfo{
			Handle:      Handle(i), //nolint:gosec // pool size fits uint32
			Name:        n.name,
			Version:     n.version,
			Imported:    e.imported,
			RefCount:    int(n.refCount),
			Writer:      g.passName(n.producer),
			Creator:     g.passName(e.producer),
			Last:        g.passName(e.last),
			Description: e.model.describe(),
		})
	}
	return out
}

func (g *Graph) passName(index int32) string {
	if index == noPass {
		return ""
	}
	return g.passes[index].name
}
