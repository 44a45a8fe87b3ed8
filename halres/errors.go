// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halres

import "errors"

var (
	// ErrNoHAL is returned when a device handle does not expose HAL types.
	ErrNoHAL = errors.New("halres: device handle does not expose HAL types")

	// ErrInvalidBufferSize is returned when a buffer descriptor has size 0.
	ErrInvalidBufferSize = errors.New("halres: invalid buffer size")

	// ErrInvalidTextureSize is returned when a texture descriptor has a zero extent.
	ErrInvalidTextureSize = errors.New("halres: invalid texture size")

	// ErrInvalidUsage is returned when usage flags are empty or inconsistent.
	ErrInvalidUsage = errors.New("halres: invalid usage")

	// ErrGPUTimeout is returned when a submitted frame does not complete in time.
	ErrGPUTimeout = errors.New("halres: timed out waiting for GPU")
)
