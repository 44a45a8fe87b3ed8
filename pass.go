// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

// SetupFunc declares the dependencies of a pass. It runs synchronously inside
// AddPass and fills data with the handles the pass needs at execution time.
type SetupFunc[D any] func(b *Builder, data *D)

// ExecuteFunc records the work of a pass. data is the payload filled by the
// setup function and must be treated as read-only. res resolves handles to
// backing objects; device and cmd are passed through from Execute untouched.
type ExecuteFunc[D any] func(data *D, res *Resources, device DeviceHandle, cmd CommandEncoder) error

// passConcept is the type-erased callback stored in a pass node.
type passConcept interface {
	execute(res *Resources, device DeviceHandle, cmd CommandEncoder) error
}

// pass owns the typed payload of one pass and its execute callback.
type pass[D any] struct {
	data D
	fn   ExecuteFunc[D]
}

func (p *pass[D]) execute(res *Resources, device DeviceHandle, cmd CommandEncoder) error {
	if p.fn == nil {
		return nil
	}
	return p.fn(&p.data, res, device, cmd)
}
