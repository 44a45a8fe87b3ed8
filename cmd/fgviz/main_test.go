// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/framegraph"
)

const shadowFrame = `name: shadows
passes:
  - name: shadow-map
    create: [shadow]
    write: [shadow]
  - name: unused-blur
    create: [blur]
    read: [shadow]
    write: [blur]
  - name: main
    import: [backbuffer]
    read: [shadow]
    write: [backbuffer]
`

func writeFrame(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := framegraph.Logger()
	t.Cleanup(func() { framegraph.SetLogger(orig) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	path := writeFrame(t, shadowFrame)

	out, err := run(t, "inspect", path, "--trace=true")
	require.NoError(t, err)

	assert.Contains(t, out, `Frame "shadows"`)
	assert.Regexp(t, `unused-blur\s+Skipped`, out)
	assert.Regexp(t, `main\s+Executed\s+yes`, out)
	assert.Regexp(t, `shadow\s+1\s+shadow-map\s+main`, out)
	assert.Regexp(t, `blur\s+1\s+-\s+-`, out)
	assert.Regexp(t, `backbuffer\s+2\s+yes`, out)
	assert.Contains(t, out, "materialize shadow")
	assert.Contains(t, out, "destroy shadow")
	assert.NotContains(t, out, "materialize blur")
	assert.Contains(t, out, "1 culled")
}

func TestInspectWithoutTrace(t *testing.T) {
	path := writeFrame(t, shadowFrame)

	out, err := run(t, "inspect", path, "--trace=false")
	require.NoError(t, err)
	assert.NotContains(t, out, "Trace:")
}

func TestInspectReportsFailures(t *testing.T) {
	path := writeFrame(t, "passes:\n  - name: present\n    side_effect: true\n    fail: device lost\n")

	out, err := run(t, "inspect", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, framegraph.ErrPassFailed)
	assert.Regexp(t, `present\s+Executed`, out)
}

func TestInspectMissingFile(t *testing.T) {
	_, err := run(t, "inspect", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMermaid(t *testing.T) {
	path := writeFrame(t, shadowFrame)

	out, err := run(t, "mermaid", path, "--declared=false")
	require.NoError(t, err)
	assert.Contains(t, out, "flowchart LR")
	assert.Contains(t, out, `[["main"]]`)
	assert.Contains(t, out, "class p1 culled;")

	out, err = run(t, "mermaid", path, "--declared=true")
	require.NoError(t, err)
	assert.NotContains(t, out, "classDef culled")
}

func TestVerboseLogsToStderr(t *testing.T) {
	path := writeFrame(t, shadowFrame)

	var errOut bytes.Buffer
	orig := framegraph.Logger()
	t.Cleanup(func() {
		framegraph.SetLogger(orig)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"mermaid", path, "--declared=false", "--verbose"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, errOut.String(), "pass culled")
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))
}
