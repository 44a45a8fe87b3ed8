// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command fgviz inspects frame description files.
//
// Usage:
//
//	fgviz inspect frame.yaml      # pass states, lifetimes and the execution trace
//	fgviz mermaid frame.yaml      # Mermaid flowchart of the compiled graph
package main

func main() {
	Execute()
}
