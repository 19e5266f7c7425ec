package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regraph/acyclic"
)

const tinyEWDAG = `8 13
5 4 0.35
4 7 0.37
5 7 0.28
5 1 0.32
4 0 0.38
0 2 0.26
3 7 0.39
1 3 0.29
7 2 0.34
6 2 0.40
3 6 0.52
6 0 0.58
6 4 0.93
`

// run executes a fresh command tree and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMatchCommand(t *testing.T) {
	out, err := run(t, "match", "([[:digit:]]+)", "41", "4a", "4(")
	require.NoError(t, err)
	assert.Contains(t, out, "41: true\n")
	assert.Contains(t, out, "4a: false\n")
	assert.Contains(t, out, "4(: false (rejected:")

	out, err = run(t, "match", `(\(a\))`, `\(a\)`, "(a)")
	require.NoError(t, err)
	assert.Contains(t, out, `\(a\): true`+"\n")
	assert.Contains(t, out, "(a): false (rejected:")

	out, err = run(t, "match", "--no-sanitize", "(a*)", "a|")
	require.NoError(t, err)
	assert.Equal(t, "a|: false\n", out)

	_, err = run(t, "match", "(ab", "ab")
	assert.Error(t, err)

	_, err = run(t, "match", "(a)")
	assert.Error(t, err, "needs at least one text")
}

func TestNFACommand(t *testing.T) {
	out, err := run(t, "nfa", "(a*)")
	require.NoError(t, err)
	assert.Contains(t, out, "corrected: (a*)\n")
	assert.Contains(t, out, "5 vertices, 5 edges")

	out, err = run(t, "nfa", "--symbols", "((a-c)+)")
	require.NoError(t, err)
	assert.Contains(t, out, "<-80>")

	out, err = run(t, "nfa", "--status", "((a-c)+)")
	require.NoError(t, err)
	assert.Contains(t, out, "range -80: a-c")
}

func TestTokensCommand(t *testing.T) {
	path := writeFile(t, "in.txt", "41 -1.5e-3 -> abc\nx,=>,2\n")

	out, err := run(t, "tokens", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1:1\tINT      41\n")
	assert.Contains(t, out, "1:4\tREAL     -1.5e-3\n")
	assert.Contains(t, out, "1:12\tOPERATOR ->\n")
	assert.Contains(t, out, "1:15\tSTRING   abc\n")
	assert.Contains(t, out, "2:1\tSTRING   x,=>,2\n")

	out, err = run(t, "tokens", "--delims", ",", "--op", "=>", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2:3\tOPERATOR =>\n")
	assert.Contains(t, out, "2:6\tINT      2\n")

	_, err = run(t, "tokens", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestPathsCommand(t *testing.T) {
	path := writeFile(t, "tinyEWDAG.txt", tinyEWDAG)

	out, err := run(t, "paths", path, "5")
	require.NoError(t, err)
	assert.Contains(t, out, "shortest paths from 5\n")
	assert.Contains(t, out, "5 to 0 (0.73):  5->4 0.35  4->0 0.38\n")
	assert.Contains(t, out, "5 to 5 (0.00):\n")

	out, err = run(t, "paths", "--longest", path, "5")
	require.NoError(t, err)
	assert.Contains(t, out, "longest paths from 5\n")
	assert.Contains(t, out, "5 to 2 (2.77):")

	out, err = run(t, "paths", "--dijkstra", path, "5")
	require.NoError(t, err)
	assert.Contains(t, out, "shortest (dijkstra) paths from 5\n")
	assert.Contains(t, out, "5 to 0 (0.73):")

	cyclic := writeFile(t, "cyclic.txt", "2 2\n0 1 1.0\n1 0 1.0\n")
	_, err = run(t, "paths", cyclic, "0")
	assert.ErrorIs(t, err, acyclic.ErrCycleDetected)

	_, err = run(t, "paths", "--longest", "--dijkstra", path, "5")
	assert.Error(t, err)
	_, err = run(t, "paths", path, "x")
	assert.Error(t, err)
}
