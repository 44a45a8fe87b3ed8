// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/internal/fgdesc"
)

var rootCmd = &cobra.Command{
	Use:   "fgviz",
	Short: "Inspect render frame graphs",
	Long: `fgviz loads a YAML frame description, declares it into a frame graph backed by
virtual resources, and reports which passes are culled and when every resource
is materialized and destroyed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			framegraph.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log graph diagnostics to stderr")
}

// loadFrame reads the description at path and declares it into a new graph.
func loadFrame(path string) (*fgdesc.Document, *fgdesc.Frame, error) {
	doc, err := fgdesc.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	frame, err := doc.Build(framegraph.NewGraph())
	if err != nil {
		return nil, nil, err
	}
	return doc, frame, nil
}
