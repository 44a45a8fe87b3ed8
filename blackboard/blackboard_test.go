// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blackboard

import (
	"errors"
	"testing"

	"github.com/gogpu/framegraph"
)

type gbufferData struct {
	Albedo framegraph.Handle
	Depth  framegraph.Handle
}

type shadowData struct {
	Map framegraph.Handle
}

type depthAlias = gbufferData

func TestAddGet(t *testing.T) {
	bb := New()
	stored := Add(bb, gbufferData{Albedo: 1, Depth: 2})

	got := Get[gbufferData](bb)
	if got != stored {
		t.Error("Get() did not return the stored pointer")
	}
	if got.Albedo != 1 || got.Depth != 2 {
		t.Errorf("Get() = %+v", got)
	}

	// Mutations through the pointer are visible to later readers.
	got.Depth = 7
	if Get[gbufferData](bb).Depth != 7 {
		t.Error("stored value is not shared")
	}
}

func TestAddReplaces(t *testing.T) {
	bb := New()
	Add(bb, shadowData{Map: 1})
	Add(bb, shadowData{Map: 2})

	if bb.Len() != 1 {
		t.Errorf("Len() = %d, want 1", bb.Len())
	}
	if got := Get[shadowData](bb).Map; got != 2 {
		t.Errorf("Map = %d, want 2", got)
	}
}

func TestTypesAreDistinctKeys(t *testing.T) {
	bb := New()
	Add(bb, gbufferData{Albedo: 3})
	Add(bb, shadowData{Map: 4})
	Add(bb, 42)
	Add(bb, int64(42))

	if bb.Len() != 4 {
		t.Errorf("Len() = %d, want 4", bb.Len())
	}
	if *Get[int](bb) != 42 || *Get[int64](bb) != 42 {
		t.Error("int and int64 values not stored separately")
	}
	// An alias names the same type.
	if Get[depthAlias](bb).Albedo != 3 {
		t.Error("alias did not resolve to the same entry")
	}
}

func TestTryGetContainsRemove(t *testing.T) {
	bb := New()

	if p, ok := TryGet[shadowData](bb); ok || p != nil {
		t.Errorf("TryGet() on empty = %v, %v", p, ok)
	}
	if Contains[shadowData](bb) {
		t.Error("Contains() on empty = true")
	}

	Add(bb, shadowData{Map: 5})
	if p, ok := TryGet[shadowData](bb); !ok || p.Map != 5 {
		t.Errorf("TryGet() = %v, %v", p, ok)
	}
	if !Contains[shadowData](bb) {
		t.Error("Contains() = false after Add")
	}

	Remove[shadowData](bb)
	if Contains[shadowData](bb) {
		t.Error("Contains() = true after Remove")
	}
}

func TestGetMissingPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNotFound) {
			t.Fatalf("recover() = %v, want ErrNotFound", r)
		}
	}()
	Get[shadowData](New())
}

func TestResetIsIndependentOfGraph(t *testing.T) {
	bb := New()
	g := framegraph.NewGraph()

	framegraph.AddPass(g, "shadow", func(b *framegraph.Builder, d *shadowData) {
		d.Map = b.Write(framegraph.Create[nopTexture](b, "shadow", 1024))
		Add(bb, *d)
	}, nil)
	g.Clear()

	if !Contains[shadowData](bb) {
		t.Fatal("Graph.Clear emptied the blackboard")
	}

	bb.Reset()
	if bb.Len() != 0 || Contains[shadowData](bb) {
		t.Error("Reset() left values behind")
	}
}

type nopTexture struct{}

func (*nopTexture) Create(framegraph.DeviceHandle, int) error { return nil }
func (*nopTexture) Destroy(framegraph.DeviceHandle, int)      {}
