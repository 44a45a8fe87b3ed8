// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "fmt"

// noPass marks an unset pass back-reference.
const noPass int32 = -1

// graphNode is the identity shared by pass and resource nodes.
//
// refCount means different things per node kind: for a pass it is the number
// of written versions still reachable, for a resource node it is the number
// of passes still reading it.
type graphNode struct {
	name     string
	id       uint32
	refCount int32
}

// resourceNode is one version of a logical resource.
type resourceNode struct {
	graphNode
	rid     uint32
	version uint32

	// producer is the index of the pass that wrote this version.
	producer int32
}

// PassState is the lifecycle state of a declared pass.
type PassState uint8

const (
	// PassDeclared means the pass is still accumulating dependencies.
	PassDeclared PassState = iota

	// PassCompiled means ref counts and lifetimes are fixed for the generation.
	PassCompiled

	// PassExecuted means the pass callback ran during Execute.
	PassExecuted

	// PassSkipped means Execute skipped the pass because it was culled.
	PassSkipped
)

// String returns a human-readable name for the state.
func (s PassState) String() string {
	switch s {
	case PassDeclared:
		return "Declared"
	case PassCompiled:
		return "Compiled"
	case PassExecuted:
		return "Executed"
	case PassSkipped:
		return "Skipped"
	default:
		return fmt.Sprintf("PassState(%d)", s)
	}
}

// passNode is one declared rendering step.
type passNode struct {
	graphNode

	creates handleSet
	reads   handleSet
	writes  handleSet

	exec       passConcept
	sideEffect bool
	culled     bool
	state      PassState

	// destroys lists the rids whose last use is this pass. Filled by Compile.
	destroys []uint32
}

// runnable reports whether the pass survives culling. A pass that writes
// nothing is a sink and is never culled.
func (p *passNode) runnable() bool {
	return p.sideEffect || !p.culled
}
