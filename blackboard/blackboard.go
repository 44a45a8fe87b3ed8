// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blackboard provides a type-keyed store for sharing per-frame data
// between the setup functions of unrelated passes.
//
// Each type has at most one entry. A pass stores its payload (typically a
// struct of framegraph handles) and later passes fetch it by type:
//
//	bb := blackboard.New()
//	blackboard.Add(bb, gbufferData{Albedo: albedo, Depth: depth})
//	...
//	gbuf := blackboard.Get[gbufferData](bb)
//
// A Blackboard is independent of any framegraph.Graph: clearing a graph does
// not clear its blackboard, call Reset at the same point when both should
// start over. A Blackboard is not safe for concurrent use.
package blackboard

import (
	"errors"
	"fmt"
)

// ErrNotFound is raised by Get when no value of the requested type is stored.
var ErrNotFound = errors.New("blackboard: no value of requested type")

// key is a distinct comparable key per type T, without reflection.
type key[T any] struct{}

// Blackboard maps each type to at most one value of that type.
type Blackboard struct {
	values map[any]any
}

// New creates an empty blackboard.
func New() *Blackboard {
	return &Blackboard{values: make(map[any]any)}
}

// Add stores v as the value for type T, replacing any previous one, and
// returns a pointer to the stored copy.
func Add[T any](bb *Blackboard, v T) *T {
	p := &v
	bb.values[key[T]{}] = p
	return p
}

// Get returns the value stored for type T. It panics with ErrNotFound if
// there is none.
func Get[T any](bb *Blackboard) *T {
	p, ok := TryGet[T](bb)
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrNotFound, (*T)(nil)))
	}
	return p
}

// TryGet returns the value stored for type T, or nil and false.
func TryGet[T any](bb *Blackboard) (*T, bool) {
	v, ok := bb.values[key[T]{}]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Contains reports whether a value of type T is stored.
func Contains[T any](bb *Blackboard) bool {
	_, ok := bb.values[key[T]{}]
	return ok
}

// Remove deletes the value stored for type T, if any.
func Remove[T any](bb *Blackboard) {
	delete(bb.values, key[T]{})
}

// Len returns the number of stored values.
func (bb *Blackboard) Len() int {
	return len(bb.values)
}

// Reset removes every stored value.
func (bb *Blackboard) Reset() {
	clear(bb.values)
}
