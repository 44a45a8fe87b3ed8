// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"testing"
	"time"
)

// mockObserver records observer notifications for DI testing.
type mockObserver struct {
	events []string
}

func (m *mockObserver) PassCulled(pass string) {
	m.events = append(m.events, "culled "+pass)
}

func (m *mockObserver) PassExecuted(pass string, elapsed time.Duration, err error) {
	if elapsed < 0 {
		m.events = append(m.events, "negative duration "+pass)
	}
	m.events = append(m.events, fmt.Sprintf("executed %s err=%v", pass, err))
}

func (m *mockObserver) ResourceMaterialized(resource string, err error) {
	m.events = append(m.events, fmt.Sprintf("materialized %s err=%v", resource, err))
}

func (m *mockObserver) ResourceDestroyed(resource string) {
	m.events = append(m.events, "destroyed "+resource)
}

func TestNewGraphDefault(t *testing.T) {
	g := NewGraph()
	if g == nil {
		t.Fatal("NewGraph returned nil")
	}
	if g.opts.logger != nil {
		t.Error("default graph should fall back to the package logger")
	}
	if g.logger() != Logger() {
		t.Error("logger() does not return the package logger")
	}
	if _, ok := g.opts.observer.(nopObserver); !ok {
		t.Errorf("default observer = %T, want nopObserver", g.opts.observer)
	}
}

func TestWithLogger(t *testing.T) {
	l := slog.Default()
	g := NewGraph(WithLogger(l))
	if g.logger() != l {
		t.Error("WithLogger did not override the package logger")
	}
}

func TestWithCapacity(t *testing.T) {
	g := NewGraph(WithCapacity(8, 32))
	if cap(g.passes) != 8 || cap(g.nodes) != 32 || cap(g.entries) != 32 {
		t.Errorf("capacities = %d/%d/%d, want 8/32/32", cap(g.passes), cap(g.nodes), cap(g.entries))
	}

	g = NewGraph(WithCapacity(-1, -1))
	if cap(g.passes) != 0 || cap(g.nodes) != 0 {
		t.Error("negative capacity was not clamped to zero")
	}
}

func TestWithObserver(t *testing.T) {
	obs := &mockObserver{}
	g := NewGraph(WithObserver(obs))
	fail := errors.New("boom")

	x := AddPass(g, "gbuffer", func(b *Builder, d *producerData) {
		d.X = b.Write(Create[fakeResource](b, "albedo", fakeDesc{}))
	}, nil)
	AddPass(g, "unused", func(b *Builder, d *producerData) {
		d.X = b.Write(Create[fakeResource](b, "scratch", fakeDesc{}))
	}, nil)
	AddPass(g, "present", func(b *Builder, _ *struct{}) {
		b.Read(x.X)
		b.SetSideEffect()
	}, func(*struct{}, *Resources, DeviceHandle, CommandEncoder) error {
		return fail
	})

	g.Compile()
	_ = g.Execute(NullDeviceHandle{})

	want := []string{
		"materialized albedo err=<nil>",
		"executed gbuffer err=<nil>",
		"culled unused",
		"executed present err=boom",
		"destroyed albedo",
	}
	if !slices.Equal(obs.events, want) {
		t.Errorf("events = %q, want %q", obs.events, want)
	}
}

func TestWithObserverNil(t *testing.T) {
	g := NewGraph(WithObserver(nil))
	if _, ok := g.opts.observer.(nopObserver); !ok {
		t.Errorf("WithObserver(nil) observer = %T, want nopObserver", g.opts.observer)
	}
}
