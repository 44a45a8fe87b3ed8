// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fgdesc

import (
	"fmt"

	"github.com/gogpu/framegraph"
)

// EventKind classifies a recorded backend call.
type EventKind uint8

const (
	EventMaterialize EventKind = iota
	EventExecute
	EventDestroy
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventMaterialize:
		return "materialize"
	case EventExecute:
		return "execute"
	case EventDestroy:
		return "destroy"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is one recorded backend call.
type Event struct {
	Kind EventKind
	Name string
}

func (e Event) String() string {
	return e.Kind.String() + " " + e.Name
}

// Recorder is a device handle that records every materialize, execute and
// destroy call made while a frame runs.
type Recorder struct {
	framegraph.NullDeviceHandle
	Events []Event
}

func (r *Recorder) add(kind EventKind, name string) {
	r.Events = append(r.Events, Event{Kind: kind, Name: name})
}

// VirtualDesc describes a virtual resource.
type VirtualDesc struct {
	Name string
}

// Virtual is a resource kind with no backing memory.
type Virtual struct {
	Live bool
}

// Create records a materialize event when device is a *Recorder.
func (v *Virtual) Create(device framegraph.DeviceHandle, desc VirtualDesc) error {
	v.Live = true
	if r, ok := device.(*Recorder); ok {
		r.add(EventMaterialize, desc.Name)
	}
	return nil
}

// Destroy records a destroy event when device is a *Recorder.
func (v *Virtual) Destroy(device framegraph.DeviceHandle, desc VirtualDesc) {
	v.Live = false
	if r, ok := device.(*Recorder); ok {
		r.add(EventDestroy, desc.Name)
	}
}

// Run compiles and executes the frame against a new Recorder and returns it
// along with the joined Execute error.
func (f *Frame) Run() (*Recorder, error) {
	rec := &Recorder{}
	f.Graph.Compile()
	err := f.Graph.Execute(rec)
	return rec, err
}
