// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "fmt"

// Resources resolves handles to backing objects while a pass executes.
// A Resources value is created by Execute for one pass callback and must not
// be retained after the callback returns. It cannot add or remove edges.
type Resources struct {
	graph  *Graph
	pass   int
	closed bool
}

// Get returns the backing object behind h as *T.
//
// The object is the one stored by Import or materialized by Create, so a
// pass that did not declare h may observe an unmaterialized zero value.
// Get panics with ErrTypeMismatch if h does not hold a T and with
// ErrInvalidHandle if h was not issued in this generation.
//
// Example:
//
//	tex := framegraph.Get[halres.Texture](res, data.Color)
func Get[T any](r *Resources, h Handle) *T {
	e := r.resolve("Get", h)
	v, ok := e.model.target().(*T)
	if !ok {
		panic(fmt.Errorf("%w: resource %q holds %T, requested %T", ErrTypeMismatch, e.name, e.model.target(), (*T)(nil)))
	}
	return v
}

// GetDesc returns the descriptor of the resource behind h. It panics with
// ErrTypeMismatch if the descriptor is not a D.
func GetDesc[D any](r *Resources, h Handle) D {
	e := r.resolve("GetDesc", h)
	d, ok := e.model.descriptor().(D)
	if !ok {
		var want D
		panic(fmt.Errorf("%w: resource %q is described by %T, requested %T", ErrTypeMismatch, e.name, e.model.descriptor(), want))
	}
	return d
}

// PassName returns the name of the pass being executed.
func (r *Resources) PassName() string {
	return r.graph.passes[r.pass].name
}

// Describe returns a human-readable description of the resource version
// behind h, for logging.
func (r *Resources) Describe(h Handle) string {
	e := r.resolve("Describe", h)
	return fmt.Sprintf("%s@%d %s", e.name, r.graph.nodes[h].version, e.model.describe())
}

func (r *Resources) resolve(op string, h Handle) *resourceEntry {
	if r.closed {
		panic(fmt.Errorf("%w: Resources.%s after execute callback returned", ErrWrongPhase, op))
	}
	return r.graph.entry(h)
}
