// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fgmetrics exports framegraph execution metrics to Prometheus.
//
//	obs := fgmetrics.New(prometheus.DefaultRegisterer)
//	g := framegraph.NewGraph(framegraph.WithObserver(obs))
package fgmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/framegraph"
)

// Observer is a framegraph.Observer backed by Prometheus collectors.
// Series are labeled by pass or resource name.
type Observer struct {
	passesExecuted        *prometheus.CounterVec
	passesCulled          *prometheus.CounterVec
	passErrors            *prometheus.CounterVec
	passDuration          *prometheus.HistogramVec
	resourcesMaterialized *prometheus.CounterVec
	materializeErrors     *prometheus.CounterVec
	resourcesDestroyed    *prometheus.CounterVec
}

var _ framegraph.Observer = (*Observer)(nil)

// New creates an Observer and registers its collectors with reg.
// It panics if registration fails, like prometheus.MustRegister.
func New(reg prometheus.Registerer) *Observer {
	o := &Observer{
		passesExecuted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "framegraph_passes_executed_total",
				Help: "Number of pass callbacks run by Execute.",
			},
			[]string{"pass"},
		),
		passesCulled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "framegraph_passes_culled_total",
				Help: "Number of passes skipped by Execute because they were culled.",
			},
			[]string{"pass"},
		),
		passErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "framegraph_pass_errors_total",
				Help: "Number of pass callbacks that returned an error.",
			},
			[]string{"pass"},
		),
		passDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "framegraph_pass_duration_seconds",
				Help:    "Time spent in pass callbacks, recording included, submission excluded.",
				Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
			},
			[]string{"pass"},
		),
		resourcesMaterialized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "framegraph_resources_materialized_total",
				Help: "Number of transient resources materialized.",
			},
			[]string{"resource"},
		),
		materializeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "framegraph_materialize_errors_total",
				Help: "Number of failed resource materializations.",
			},
			[]string{"resource"},
		),
		resourcesDestroyed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "framegraph_resources_destroyed_total",
				Help: "Number of transient resources destroyed.",
			},
			[]string{"resource"},
		),
	}

	reg.MustRegister(
		o.passesExecuted,
		o.passesCulled,
		o.passErrors,
		o.passDuration,
		o.resourcesMaterialized,
		o.materializeErrors,
		o.resourcesDestroyed,
	)
	return o
}

// PassCulled implements framegraph.Observer.
func (o *Observer) PassCulled(pass string) {
	o.passesCulled.WithLabelValues(pass).Inc()
}

// PassExecuted implements framegraph.Observer.
func (o *Observer) PassExecuted(pass string, elapsed time.Duration, err error) {
	o.passesExecuted.WithLabelValues(pass).Inc()
	o.passDuration.WithLabelValues(pass).Observe(elapsed.Seconds())
	if err != nil {
		o.passErrors.WithLabelValues(pass).Inc()
	}
}

// ResourceMaterialized implements framegraph.Observer.
func (o *Observer) ResourceMaterialized(resource string, err error) {
	if err != nil {
		o.materializeErrors.WithLabelValues(resource).Inc()
		return
	}
	o.resourcesMaterialized.WithLabelValues(resource).Inc()
}

// ResourceDestroyed implements framegraph.Observer.
func (o *Observer) ResourceDestroyed(resource string) {
	o.resourcesDestroyed.WithLabelValues(resource).Inc()
}
