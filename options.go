// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "log/slog"

// GraphOption configures a Graph during creation.
//
// Example:
//
//	g := framegraph.NewGraph(
//	    framegraph.WithLogger(logger),
//	    framegraph.WithObserver(fgmetrics.New(prometheus.DefaultRegisterer)),
//	)
type GraphOption func(*graphOptions)

// graphOptions holds optional configuration for Graph creation.
type graphOptions struct {
	logger    *slog.Logger
	observer  Observer
	passes    int
	resources int
}

// defaultOptions returns the default graph options.
func defaultOptions() graphOptions {
	return graphOptions{
		logger:   nil, // Falls back to the package logger at use time
		observer: nopObserver{},
	}
}

// WithLogger sets a logger for this graph only, overriding SetLogger.
// A nil logger keeps the package-wide default.
func WithLogger(l *slog.Logger) GraphOption {
	return func(o *graphOptions) {
		o.logger = l
	}
}

// WithObserver installs hooks that are notified about culled passes,
// executed passes and resource lifetimes during Execute.
// A nil observer disables notifications.
func WithObserver(obs Observer) GraphOption {
	return func(o *graphOptions) {
		if obs == nil {
			obs = nopObserver{}
		}
		o.observer = obs
	}
}

// WithCapacity pre-sizes the node pools for the expected number of passes
// and resource versions per frame. It only affects allocation behavior.
func WithCapacity(passes, resources int) GraphOption {
	return func(o *graphOptions) {
		o.passes = max(passes, 0)
		o.resources = max(resources, 0)
	}
}
