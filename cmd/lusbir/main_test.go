// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the command line and returns the exit code and both streams.
func runCLI(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestCommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"list positional", []string{"list", "[)", "0", "10", "2", "1"}, "1\n3\n5\n7\n9\n"},
		{"list literal", []string{"list", "Lusbir('(]', 5, 55, -10, 5)"}, "55\n45\n35\n25\n15\n"},
		{"list negatives", []string{"list", "--", "-3", "2"}, "-3\n-2\n-1\n0\n1\n"},
		{"list reverse", []string{"list", "--reverse", "5"}, "4\n3\n2\n1\n0\n"},
		{"list limit", []string{"list", "--limit=2", "10"}, "0\n1\n... (8 more)\n"},
		{"list empty", []string{"list", "0", "0"}, ""},
		{"len", []string{"len", "Lusbir(0, 10, 3)"}, "4\n"},
		{"at first", []string{"at", "--index=0", "(]", "5", "55", "-10", "5"}, "55\n"},
		{"at negative", []string{"at", "--index=-1", "(]", "5", "55", "-10", "5"}, "15\n"},
		{"contains true", []string{"contains", "--value=7", "0", "10", "2", "1"}, "true\n"},
		{"contains false", []string{"contains", "--value=8", "0", "10", "2", "1"}, "false\n"},
		{"index", []string{"index", "--value=5", "--", "[]", "-10", "10", "3"}, "5\n"},
		{"slice reverse", []string{"slice", "--step=-2", "(]", "5", "55", "-10", "5"},
			"Lusbir('[]', 15, 55, 20, 15)\n15\n35\n55\n"},
		{"slice window", []string{"slice", "--start=1", "--stop=3", "10"},
			"Lusbir('[]', 1, 2, 1, 1)\n1\n2\n"},
		{"slice limit", []string{"slice", "--step=2", "--limit=2", "10"},
			"Lusbir('[]', 0, 8, 2)\n0\n2\n... (3 more)\n"},
		{"slice empty", []string{"slice", "--start=5", "--stop=5", "10"},
			"Lusbir('[)', 0, 0)\n"},
		{"range", []string{"range", "[)", "0", "10", "2", "1"}, "range(1, 11, 2)\n"},
		{"parse", []string{"parse", "(]", "20", "50", "10", "5"},
			"Lusbir('(]', 20, 50, 10, 5)\n{(20, 50], step=10, base=5}\nlen: 3\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(tc.args...)
			require.Equal(t, exitOK, code, "stderr: %s", errOut)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestSliceHugeIsStreamed checks that slicing a sequence far too long to
// materialise prints a truncated listing instead of allocating it.
func TestSliceHugeIsStreamed(t *testing.T) {
	code, out, errOut := runCLI("slice", "--", "-4611686018427387904", "4611686018427387903")
	require.Equal(t, exitOK, code, "stderr: %s", errOut)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1002)
	assert.Equal(t, "Lusbir('[]', -4611686018427387904, 4611686018427387902, 1, -4611686018427387904)", lines[0])
	assert.Equal(t, "-4611686018427387904", lines[1])
	assert.Equal(t, "-4611686018427386905", lines[1000])
	assert.Equal(t, "... (9223372036854774807 more)", lines[1001])

	code, out, errOut = runCLI("slice", "--limit=3", "--step=-1", "0", "100000000000")
	require.Equal(t, exitOK, code, "stderr: %s", errOut)
	assert.Equal(t, "Lusbir('[]', 0, 99999999999, -1, 99999999999)\n99999999999\n99999999998\n99999999997\n... (99999999997 more)\n", out)
}

func TestHashMatchesForEqualSequences(t *testing.T) {
	code, a, _ := runCLI("hash", "(]", "20", "50", "10", "5")
	require.Equal(t, exitOK, code)
	code, b, _ := runCLI("hash", "[)", "25", "55", "10", "25")
	require.Equal(t, exitOK, code)
	code, c, _ := runCLI("hash", "[)", "25", "56", "10", "25")
	require.Equal(t, exitOK, code)

	assert.Len(t, strings.TrimSpace(a), 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCommandFailures(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{"index out of range", []string{"at", "--index=5", "5"}, exitFailure, "index out of range"},
		{"value not found", []string{"index", "--value=6", "0", "10", "2", "1"}, exitFailure, "not in lusbir"},
		{"zero step", []string{"len", "0", "10", "0"}, exitFailure, "step"},
		{"bad literal", []string{"len", "Lusbir(1,"}, exitFailure, "syntax"},
		{"too many values", []string{"len", "1", "2", "3", "4", "5"}, exitFailure, "arguments"},
		{"zero slice step", []string{"slice", "--step=0", "10"}, exitFailure, "slice step"},
		{"bad slice index", []string{"slice", "--start=x", "10"}, exitFailure, "slice argument"},
		{"unknown command", []string{"frobnicate", "10"}, exitUsage, "lusbir:"},
		{"missing lusbir", []string{"len"}, exitUsage, "lusbir:"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(tc.args...)
			assert.Equal(t, tc.code, code)
			if tc.code == exitFailure {
				assert.Empty(t, out)
			}
			assert.Contains(t, errOut, tc.message)
		})
	}
}

func TestDebugLogging(t *testing.T) {
	code, out, errOut := runCLI("--debug", "len", "0", "10", "2", "1")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "5\n", out)
	assert.Contains(t, errOut, "resolved lusbir")
	assert.Contains(t, errOut, "{[0, 10), step=2, base=1}")

	code, _, errOut = runCLI("len", "0", "10", "2", "1")
	require.Equal(t, exitOK, code)
	assert.Empty(t, errOut)
}
