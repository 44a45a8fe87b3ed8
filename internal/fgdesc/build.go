// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fgdesc

import (
	"errors"
	"fmt"

	"github.com/gogpu/framegraph"
)

// Frame is a description declared into a graph.
type Frame struct {
	Graph *framegraph.Graph

	// versions maps a resource name to the handles of its versions, in
	// version order.
	versions map[string][]framegraph.Handle
}

// Latest returns the handle of the newest version of the named resource.
func (f *Frame) Latest(name string) (framegraph.Handle, bool) {
	vs := f.versions[name]
	if len(vs) == 0 {
		return framegraph.InvalidHandle, false
	}
	return vs[len(vs)-1], true
}

type passData struct {
	name string
	fail string
}

func executePass(d *passData, _ *framegraph.Resources, device framegraph.DeviceHandle, _ framegraph.CommandEncoder) error {
	if r, ok := device.(*Recorder); ok {
		r.add(EventExecute, d.name)
	}
	if d.fail != "" {
		return errors.New(d.fail)
	}
	return nil
}

// Build declares every pass of the description into g, which must be in its
// declaration phase. On error g is cleared.
func (d *Document) Build(g *framegraph.Graph) (*Frame, error) {
	f := &Frame{Graph: g, versions: make(map[string][]framegraph.Handle)}

	for _, spec := range d.Passes {
		for _, name := range spec.Import {
			if _, exists := f.versions[name]; exists {
				g.Clear()
				return nil, fmt.Errorf("%w: pass %q imports %q, which is already declared", ErrInvalid, spec.Name, name)
			}
			h := framegraph.Import(g, name, VirtualDesc{Name: name}, Virtual{})
			f.versions[name] = []framegraph.Handle{h}
		}

		var setupErr error
		framegraph.AddPass(g, spec.Name, func(b *framegraph.Builder, data *passData) {
			data.name = spec.Name
			data.fail = spec.Fail
			setupErr = f.declare(b, spec)
		}, executePass)

		if setupErr != nil {
			g.Clear()
			return nil, setupErr
		}
	}
	return f, nil
}

func (f *Frame) declare(b *framegraph.Builder, spec PassSpec) error {
	for _, name := range spec.Create {
		if _, exists := f.versions[name]; exists {
			return fmt.Errorf("%w: pass %q creates %q, which is already declared", ErrInvalid, spec.Name, name)
		}
		h := framegraph.Create[Virtual](b, name, VirtualDesc{Name: name})
		f.versions[name] = []framegraph.Handle{h}
	}

	for _, ref := range spec.Read {
		h, err := f.resolve(spec.Name, ref)
		if err != nil {
			return err
		}
		b.Read(h)
	}

	for _, ref := range spec.Write {
		h, err := f.resolve(spec.Name, ref)
		if err != nil {
			return err
		}
		name, _, _ := ParseRef(ref)
		if next := b.Write(h); next != h {
			f.versions[name] = append(f.versions[name], next)
		}
	}

	if spec.SideEffect {
		b.SetSideEffect()
	}
	return nil
}

func (f *Frame) resolve(pass, ref string) (framegraph.Handle, error) {
	name, version, err := ParseRef(ref)
	if err != nil {
		return framegraph.InvalidHandle, fmt.Errorf("%w: pass %q: %w", ErrInvalid, pass, err)
	}
	vs, ok := f.versions[name]
	if !ok {
		return framegraph.InvalidHandle, fmt.Errorf("%w: pass %q references undeclared resource %q", ErrInvalid, pass, name)
	}
	if version < 0 {
		return vs[len(vs)-1], nil
	}
	if version >= len(vs) {
		return framegraph.InvalidHandle, fmt.Errorf("%w: pass %q references %q, but only %d versions exist", ErrInvalid, pass, ref, len(vs))
	}
	return vs[version], nil
}
