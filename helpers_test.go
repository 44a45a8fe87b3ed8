// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

// eventLog records the order of backend calls made during Execute.
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *eventLog) assert(t *testing.T, want ...string) {
	t.Helper()
	if !slices.Equal(l.events, want) {
		t.Errorf("events = %q, want %q", l.events, want)
	}
}

// fakeDesc describes a fakeResource.
type fakeDesc struct {
	Width int
	log   *eventLog
	fail  error
}

// fakeResource is a backing object recording its lifecycle.
type fakeResource struct {
	name    string
	alive   bool
	creates int
}

func (r *fakeResource) Create(_ DeviceHandle, desc fakeDesc) error {
	r.creates++
	if desc.fail != nil {
		return desc.fail
	}
	r.alive = true
	if desc.log != nil {
		desc.log.add("create %d", desc.Width)
	}
	return nil
}

func (r *fakeResource) Destroy(_ DeviceHandle, desc fakeDesc) {
	r.alive = false
	if desc.log != nil {
		desc.log.add("destroy %d", desc.Width)
	}
}

// otherResource is a second resource kind used to exercise type mismatches.
type otherResource struct{}

func (*otherResource) Create(DeviceHandle, string) error { return nil }
func (*otherResource) Destroy(DeviceHandle, string)      {}

// record returns an execute callback appending "run <name>" to log.
func record[D any](log *eventLog, name string) ExecuteFunc[D] {
	return func(*D, *Resources, DeviceHandle, CommandEncoder) error {
		log.add("run %s", name)
		return nil
	}
}

// mustPanicWith fails the test unless fn panics with an error matching target.
func mustPanicWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value = %v (%T), want error", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic = %v, want %v", err, target)
		}
	}()
	fn()
}
