package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunMatch(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	grammarName = "arithmetic"
	bufferSize = 0
	path := writeInput(t, "22+13")

	err := runMatch(cmd, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "matched 1:1-1:6 (5 characters)\n", buf.String())
}

func TestRunMatch_Streamed(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	grammarName = "arithmetic"
	bufferSize = 8
	path := writeInput(t, "12+34+56+78+90")

	err := runMatch(cmd, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "matched 1:1-1:15 (14 characters)\n", buf.String())
}

func TestRunMatch_NoMatch(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	grammarName = "comments"
	bufferSize = 0
	path := writeInput(t, "not a comment")

	err := runMatch(cmd, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "no match\n", buf.String())
}

func TestRunMatch_UnknownGrammar(t *testing.T) {
	cmd := &cobra.Command{}

	grammarName = "nope"
	bufferSize = 0

	err := runMatch(cmd, []string{writeInput(t, "x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown grammar "nope"`)
}
