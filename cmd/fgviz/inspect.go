// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/framegraph"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Compile and run a frame description",
	Long: `Compiles the frame described by FILE, runs it against a recording backend and
prints pass states, resource lifetimes and the resulting call trace.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, frame, err := loadFrame(args[0])
		if err != nil {
			return err
		}

		rec, runErr := frame.Run()
		out := cmd.OutOrStdout()

		if doc.Name != "" {
			fmt.Fprintf(out, "Frame %q\n\n", doc.Name)
		}
		writePasses(out, frame.Graph.Passes())
		fmt.Fprintln(out)
		writeLifetimes(out, frame.Graph.Resources())

		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			fmt.Fprintln(out, "\nTrace:")
			for i, e := range rec.Events {
				fmt.Fprintf(out, "  %3d  %s\n", i, e)
			}
		}

		fmt.Fprintf(out, "\n%s\n", frame.Graph.Stats())
		return runErr
	},
}

func init() {
	inspectCmd.Flags().Bool("trace", true, "Print the materialize/execute/destroy trace")
	rootCmd.AddCommand(inspectCmd)
}

func writePasses(w io.Writer, passes []framegraph.PassInfo) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PASS\tSTATE\tSIDE EFFECT\tREFS")
	for _, p := range passes {
		side := ""
		if p.SideEffect {
			side = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.Name, p.State, side, p.RefCount)
	}
	tw.Flush()
}

// writeLifetimes prints one row per logical resource, using its latest version.
func writeLifetimes(w io.Writer, resources []framegraph.ResourceInfo) {
	latest := map[string]framegraph.ResourceInfo{}
	var order []string
	for _, r := range resources {
		if _, seen := latest[r.Name]; !seen {
			order = append(order, r.Name)
		}
		latest[r.Name] = r
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RESOURCE\tVERSIONS\tIMPORTED\tFIRST\tLAST")
	for _, name := range order {
		r := latest[name]
		imported := ""
		if r.Imported {
			imported = "yes"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", name, r.Version+1, imported, orDash(r.Creator), orDash(r.Last))
	}
	tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
