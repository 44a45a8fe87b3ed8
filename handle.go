// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "slices"

// Handle identifies one version of one logical resource within a graph
// generation. Handles are dense indices into the graph's resource node pool,
// so two handles may name different versions of the same resource.
//
// Handles are only meaningful for the generation that issued them; Clear
// restarts the handle space at zero.
type Handle uint32

// InvalidHandle never identifies a resource node.
const InvalidHandle Handle = ^Handle(0)

// IsValid reports whether h is not the InvalidHandle sentinel.
// It does not check that h was issued by a particular graph.
func (h Handle) IsValid() bool { return h != InvalidHandle }

// handleSet is an insertion-ordered set of handles.
type handleSet []Handle

func (s handleSet) contains(h Handle) bool {
	return slices.Contains(s, h)
}

// add appends h unless it is already present and returns h.
func (s *handleSet) add(h Handle) Handle {
	if !s.contains(h) {
		*s = append(*s, h)
	}
	return h
}
