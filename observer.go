// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "time"

// Observer receives notifications while a graph executes. Implementations
// are called synchronously from Execute and must not call back into the graph.
type Observer interface {
	// PassCulled is called for every pass Execute skips.
	PassCulled(pass string)

	// PassExecuted is called after a pass callback returns.
	PassExecuted(pass string, elapsed time.Duration, err error)

	// ResourceMaterialized is called after Resource.Create, with the error it returned.
	ResourceMaterialized(resource string, err error)

	// ResourceDestroyed is called after Resource.Destroy.
	ResourceDestroyed(resource string)
}

// nopObserver ignores every notification.
type nopObserver struct{}

func (nopObserver) PassCulled(string)                         {}
func (nopObserver) PassExecuted(string, time.Duration, error) {}
func (nopObserver) ResourceMaterialized(string, error)        {}
func (nopObserver) ResourceDestroyed(string)                  {}
