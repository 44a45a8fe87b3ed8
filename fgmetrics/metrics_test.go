// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fgmetrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gogpu/framegraph"
)

type scratch struct{ live bool }

func (s *scratch) Create(_ framegraph.DeviceHandle, fail bool) error {
	if fail {
		return errors.New("allocation failed")
	}
	s.live = true
	return nil
}

func (s *scratch) Destroy(framegraph.DeviceHandle, bool) { s.live = false }

type outData struct {
	Out framegraph.Handle
}

func TestObserverCountsFrame(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := New(reg)
	g := framegraph.NewGraph(framegraph.WithObserver(obs))

	gbuf := framegraph.AddPass(g, "gbuffer", func(b *framegraph.Builder, d *outData) {
		d.Out = b.Write(framegraph.Create[scratch](b, "albedo", false))
	}, nil)
	framegraph.AddPass(g, "bloom", func(b *framegraph.Builder, d *outData) {
		d.Out = b.Write(framegraph.Create[scratch](b, "bloom", false))
	}, nil)
	framegraph.AddPass(g, "alloc", func(b *framegraph.Builder, d *outData) {
		d.Out = b.Write(framegraph.Create[scratch](b, "huge", true))
		b.SetSideEffect()
	}, nil)
	framegraph.AddPass(g, "present", func(b *framegraph.Builder, _ *struct{}) {
		b.Read(gbuf.Out)
		b.SetSideEffect()
	}, func(*struct{}, *framegraph.Resources, framegraph.DeviceHandle, framegraph.CommandEncoder) error {
		return errors.New("surface lost")
	})

	g.Compile()
	if err := g.Execute(framegraph.NullDeviceHandle{}); err == nil {
		t.Fatal("Execute() = nil, want error")
	}

	checks := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"executed gbuffer", obs.passesExecuted.WithLabelValues("gbuffer"), 1},
		{"executed present", obs.passesExecuted.WithLabelValues("present"), 1},
		{"culled bloom", obs.passesCulled.WithLabelValues("bloom"), 1},
		{"errors present", obs.passErrors.WithLabelValues("present"), 1},
		{"errors gbuffer", obs.passErrors.WithLabelValues("gbuffer"), 0},
		{"materialized albedo", obs.resourcesMaterialized.WithLabelValues("albedo"), 1},
		{"materialize errors huge", obs.materializeErrors.WithLabelValues("huge"), 1},
		{"destroyed albedo", obs.resourcesDestroyed.WithLabelValues("albedo"), 1},
		{"destroyed huge", obs.resourcesDestroyed.WithLabelValues("huge"), 1},
	}
	for _, c := range checks {
		if got := testutil.ToFloat64(c.c); got != c.want {
			t.Errorf("%s = %v, want %v", c.name, got, c.want)
		}
	}

	if n := testutil.CollectAndCount(obs.passDuration); n != 3 {
		t.Errorf("duration series = %d, want 3", n)
	}
}

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := New(reg)
	obs.PassCulled("x")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() = %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "framegraph_passes_culled_total" {
			found = true
		}
	}
	if !found {
		t.Error("framegraph_passes_culled_total not registered")
	}

	defer func() {
		if recover() == nil {
			t.Error("registering twice did not panic")
		}
	}()
	New(reg)
}
