// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
)

var mermaidCmd = &cobra.Command{
	Use:   "mermaid FILE",
	Short: "Export the frame graph as a Mermaid flowchart",
	Long: `Declares the frame described by FILE and writes a Mermaid flowchart of passes
and resource versions. Culled passes are styled unless --declared is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, frame, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		if declared, _ := cmd.Flags().GetBool("declared"); !declared {
			frame.Graph.Compile()
		}
		return frame.Graph.WriteMermaid(cmd.OutOrStdout())
	},
}

func init() {
	mermaidCmd.Flags().Bool("declared", false, "Skip compilation and show the graph as declared")
	rootCmd.AddCommand(mermaidCmd)
}
