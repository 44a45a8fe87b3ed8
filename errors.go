// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "errors"

// Errors reported by the graph. Misuse errors are raised as panics wrapping
// one of these values; backend failures are returned by Execute.
var (
	// ErrInvalidHandle is raised when a handle was not issued in the current generation.
	ErrInvalidHandle = errors.New("framegraph: invalid handle")

	// ErrTypeMismatch is raised when a handle is resolved with the wrong static type.
	ErrTypeMismatch = errors.New("framegraph: resource type mismatch")

	// ErrWrongPhase is raised when an operation is called outside its phase
	// (declare, compile, execute).
	ErrWrongPhase = errors.New("framegraph: operation called in wrong phase")

	// ErrMaterialize wraps a failure returned by Resource.Create.
	ErrMaterialize = errors.New("framegraph: materialize failed")

	// ErrPassFailed wraps a failure returned by a pass callback.
	ErrPassFailed = errors.New("framegraph: pass failed")
)
