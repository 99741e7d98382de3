package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eulerpath/builder"
	"github.com/katalvlaran/eulerpath/graphio"
)

// writeFile creates name under a temp dir with content and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command with an empty config file unless args
// already name one.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	hasConfig := false
	for _, a := range args {
		if a == "--config" {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append([]string{"--config", writeFile(t, "config.toml", "")}, args...)
	}

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

const (
	squareGraph       = "4\n0 1\n1 2\n2 3\n3 0\n"
	lineGraph         = "3\n0 1\n1 2\n"
	separateEdges     = "4\n0 1\n2 3\n"
	doubledComponents = "4\n0 1\n1 0\n2 3\n3 2\n"
	isolatedVertices  = "5\n"
)

func TestSolve_Text(t *testing.T) {
	tests := []struct {
		name  string
		graph string
		want  string
	}{
		{"cycle", squareGraph, "0 1 2 3 0\n"},
		{"path", lineGraph, "2 1 0\n"},
		{"too many odd", separateEdges, msgNoWalk + "\n" + msgTooManyOdd + "\n"},
		{"zero degree", isolatedVertices, msgNoWalk + "\n" + msgZeroDegree + "\n"},
		{"disconnected", doubledComponents, msgNoWalk + "\n" + msgDisconnected + "\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, "solve", writeFile(t, "g.txt", tc.graph))
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestSolve_Separator(t *testing.T) {
	out, _, err := execute(t, "solve", "--separator", ",", writeFile(t, "g.txt", squareGraph))
	require.NoError(t, err)
	assert.Equal(t, "0,1,2,3,0\n", out)
}

func TestSolve_JSON(t *testing.T) {
	out, _, err := execute(t, "solve", "-f", "json", "--verify", writeFile(t, "g.txt", lineGraph))
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "path", r.Outcome)
	assert.True(t, r.Exists)
	assert.False(t, r.Closed)
	assert.Equal(t, []int{2, 1, 0}, r.Vertices)
	assert.Equal(t, 1, r.Components)
}

func TestSolve_YAML(t *testing.T) {
	out, _, err := execute(t, "solve", "--format", "yaml", writeFile(t, "g.txt", doubledComponents))
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "disconnected", r.Outcome)
	assert.False(t, r.Exists)
	assert.Empty(t, r.Vertices)
	assert.Equal(t, 2, r.Components)
}

func TestSolve_ConfigAndFlags(t *testing.T) {
	cfg := writeFile(t, "config.toml", "log_level = \"warn\"\n\n[solve]\nseparator = \"-\"\nformat = \"text\"\n")
	graph := writeFile(t, "g.txt", squareGraph)

	out, _, err := execute(t, "--config", cfg, "solve", graph)
	require.NoError(t, err)
	assert.Equal(t, "0-1-2-3-0\n", out)

	out, _, err = execute(t, "--config", cfg, "solve", "--separator", " ", graph)
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3 0\n", out, "flags override the file")
}

func TestSolve_DefaultLevelIsQuiet(t *testing.T) {
	out, stderr, err := execute(t, "solve", writeFile(t, "g.txt", squareGraph))
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3 0\n", out)
	assert.Empty(t, stderr, "a successful run writes only the answer")
}

func TestSolve_VerboseLogsEngine(t *testing.T) {
	_, stderr, err := execute(t, "-v", "solve", "--no-defer", writeFile(t, "g.txt", squareGraph))
	require.NoError(t, err)
	assert.Contains(t, stderr, "sub-circuit")
	assert.Contains(t, stderr, "solved")
}

func TestSolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"malformed header", []string{"solve", writeFile(t, "g.txt", "x\n")}, graphio.ErrFormat},
		{"vertex out of range", []string{"solve", writeFile(t, "g.txt", "2\n0 2\n")}, graphio.ErrVertexOutOfRange},
		{"missing file", []string{"solve", filepath.Join(t.TempDir(), "absent.txt")}, os.ErrNotExist},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "absent.toml"), "solve", "x"}, os.ErrNotExist},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.ErrorIs(t, err, tc.want)
			assert.Empty(t, out, "nothing is printed before the input is accepted")
		})
	}

	_, _, err := execute(t, "solve", "--format", "xml", writeFile(t, "g.txt", squareGraph))
	require.Error(t, err)

	_, _, err = execute(t, "--config", writeFile(t, "c.toml", "log_level = \"loud\"\n"), "solve", "x")
	require.Error(t, err)

	_, _, err = execute(t, "--config", writeFile(t, "c.toml", "log_level = \n"), "solve", "x")
	require.Error(t, err)
}

func TestClassify(t *testing.T) {
	out, _, err := execute(t, "classify", writeFile(t, "g.txt", lineGraph))
	require.NoError(t, err)

	assert.Contains(t, out, "two-odd (endpoints 0,2; max-degree vertex 1)")
	assert.Contains(t, out, "components:")
	assert.Contains(t, out, "eulerian walk exists")

	out, _, err = execute(t, "classify", writeFile(t, "g.txt", doubledComponents))
	require.NoError(t, err)
	assert.Contains(t, out, "no-odd")
	assert.Contains(t, out, "no eulerian walk")
}

func TestGenerate_Stdout(t *testing.T) {
	out, _, err := execute(t, "generate", "cycle", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, "4\n0 1\n1 2\n2 3\n3 0\n", out)
}

func TestGenerate_ThenSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")

	_, _, err := execute(t, "generate", "grid", "--rows", "3", "--cols", "4", "--doubled", "-o", path)
	require.NoError(t, err)

	out, _, err := execute(t, "solve", "--verify", "-f", "json", path)
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "cycle", r.Outcome)
	assert.Len(t, r.Vertices, 2*17+1)
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := execute(t, "generate", "hexagon")
	require.Error(t, err)

	_, _, err = execute(t, "generate", "cycle", "-n", "2")
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("", "", "") })

	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "eulerpath 1.2.3")
	assert.Contains(t, out, "commit: abc123")
}
