// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// WriteMermaid writes the graph as a Mermaid flowchart.
//
// Passes are drawn as rectangles (subroutines when side-effecting), resource
// versions as stadiums (cylinders when imported). Edges run from a version to
// the passes reading it and from a pass to the versions it writes. After
// Compile, culled passes and the versions only they touch get the "culled"
// class.
func (g *Graph) WriteMermaid(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("flowchart LR\n")

	for i := range g.nodes {
		n := &g.nodes[i]
		opener, closer := "([", "])"
		if g.entries[n.rid].imported {
			opener, closer = "[(", ")]"
		}
		fmt.Fprintf(&sb, "    r%d%s\"%s@%d\"%s\n", i, opener, mermaidLabel(n.name), n.version, closer)
	}

	for i := range g.passes {
		p := &g.passes[i]
		opener, closer := "[", "]"
		if p.sideEffect {
			opener, closer = "[[", "]]"
		}
		fmt.Fprintf(&sb, "    p%d%s\"%s\"%s\n", i, opener, mermaidLabel(p.name), closer)

		for _, h := range p.reads {
			fmt.Fprintf(&sb, "    r%d --> p%d\n", h, i)
		}
		for _, h := range p.writes {
			arrow := "-->"
			if p.creates.contains(h) {
				arrow = "==>"
			}
			fmt.Fprintf(&sb, "    p%d %s r%d\n", i, arrow, h)
		}
	}

	if g.phase != phaseDeclare {
		sb.WriteString("\n    classDef culled fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#757575;\n")
		for i := range g.passes {
			if !g.passes[i].runnable() {
				fmt.Fprintf(&sb, "    class p%d culled;\n", i)
			}
		}
		for i := range g.nodes {
			if g.nodes[i].refCount == 0 && g.isCulledOutput(Handle(i)) { //nolint:gosec // pool size fits uint32
				fmt.Fprintf(&sb, "    class r%d culled;\n", i)
			}
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// isCulledOutput reports whether h was written by a culled pass.
func (g *Graph) isCulledOutput(h Handle) bool {
	producer := g.nodes[h].producer
	return producer != noPass && !g.passes[producer].runnable()
}

// labelEscaper rewrites the characters that end a quoted Mermaid label or a
// statement as Mermaid entity codes.
var labelEscaper = strings.NewReplacer(
	"#", "#35;",
	"\"", "#quot;",
	";", "#59;",
	"<", "#lt;",
	">", "#gt;",
)

// mermaidLabel escapes a name for use inside a quoted Mermaid label.
// Control characters, newlines included, become spaces.
func mermaidLabel(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return labelEscaper.Replace(s)
}
