// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "fmt"

// Resource is the capability a backing object must provide to be managed by
// the graph. D is the descriptor type associated with the resource kind.
//
// Create materializes the object from its descriptor right before the first
// pass that creates it runs. Destroy releases it right after the last pass
// that touches it returns. The device is forwarded unchanged from Execute.
//
// Implementations are normally pointer receivers on a struct type; the graph
// stores the struct by value and calls the methods on its address.
type Resource[D any] interface {
	Create(device DeviceHandle, desc D) error
	Destroy(device DeviceHandle, desc D)
}

// resourcePtr constrains PT to be *T implementing Resource[D].
type resourcePtr[T, D any] interface {
	*T
	Resource[D]
}

// resourceConcept is the type-erased view of a backing object and its
// descriptor.
type resourceConcept interface {
	create(device DeviceHandle) error
	destroy(device DeviceHandle)
	describe() string

	// target returns a pointer to the stored backing object.
	target() any
	// descriptor returns the stored descriptor.
	descriptor() any
}

// resourceModel stores a concrete backing object with its descriptor.
type resourceModel[T, D any, PT resourcePtr[T, D]] struct {
	desc     D
	resource T
}

func (m *resourceModel[T, D, PT]) create(device DeviceHandle) error {
	return PT(&m.resource).Create(device, m.desc)
}

func (m *resourceModel[T, D, PT]) destroy(device DeviceHandle) {
	PT(&m.resource).Destroy(device, m.desc)
}

func (m *resourceModel[T, D, PT]) describe() string {
	return fmt.Sprintf("%T%+v", m.resource, m.desc)
}

func (m *resourceModel[T, D, PT]) target() any     { return &m.resource }
func (m *resourceModel[T, D, PT]) descriptor() any { return m.desc }

// resourceEntry is a logical resource: the stable identity behind all of its
// versions, and the unit of materialization.
type resourceEntry struct {
	name     string
	rid      uint32
	version  uint32
	imported bool
	model    resourceConcept

	// producer is the pass that materializes the resource, last the final
	// pass touching any of its versions. Both are pass indices set by Compile.
	producer int32
	last     int32

	// created is set once Execute issued Create, whether or not it failed,
	// and cleared when Destroy is issued.
	created bool
}
