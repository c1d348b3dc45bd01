package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netroute/routing"
)

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
	require.Equal(t, code, exitErr.Code)
}

func TestParse_HelpAndNoCommand(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-h"}, {}, {"compare", "-h"}} {
		out := &bytes.Buffer{}
		inv, shouldExit, err := Parse(args, out)
		require.NoError(t, err)
		require.True(t, shouldExit, "args %q", args)
		require.Nil(t, inv)
		require.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_UnknownCommand(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"plot"}, &bytes.Buffer{})
	requireExitCode(t, err, 2)
	require.Contains(t, err.Error(), "plot")
}

func TestParse_GlobalLogFlags(t *testing.T) {
	t.Parallel()

	inv, _, err := Parse([]string{"-log-level", "DEBUG", "-log-format", "json", "stats", "-graph", "g.json"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "debug", inv.Config.Log.Level)
	require.Equal(t, "json", inv.Config.Log.Format)

	_, _, err = Parse([]string{"-log-level", "loud", "stats", "-graph", "g.json"}, &bytes.Buffer{})
	requireExitCode(t, err, 2)
	_, _, err = Parse([]string{"-log-format", "xml", "stats", "-graph", "g.json"}, &bytes.Buffer{})
	requireExitCode(t, err, 2)
}

func TestParse_Generate(t *testing.T) {
	t.Parallel()

	inv, shouldExit, err := Parse([]string{"generate", "-policy", "grid", "-nodes", "25", "-seed", "9", "-out", "g.json"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, CmdGenerate, inv.Command)
	require.Equal(t, "grid", inv.Config.Generate.Policy)
	require.Equal(t, 25, inv.Config.Generate.Nodes)
	require.Equal(t, int64(9), inv.Config.Generate.Seed)
	require.Equal(t, "g.json", inv.Out)
}

func TestParse_GenerateErrors(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"missing out":    {"generate"},
		"bad policy":     {"generate", "-policy", "tree", "-out", "g.json"},
		"too few nodes":  {"generate", "-nodes", "1", "-out", "g.json"},
		"bad weights":    {"generate", "-min-weight", "5", "-max-weight", "2", "-out", "g.json"},
		"stray argument": {"generate", "-out", "g.json", "extra"},
		"unknown flag":   {"generate", "-colour", "red"},
	}
	for name, args := range cases {
		_, _, err := Parse(args, &bytes.Buffer{})
		require.Error(t, err, name)
		requireExitCode(t, err, 2)
	}
}

func TestParse_Compare(t *testing.T) {
	t.Parallel()

	inv, _, err := Parse([]string{"compare", "-graph", "g.json", "-from", "1", "-to", "9",
		"-algos", "dijkstra,a*", "-timeout", "2s", "-parallel=false"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, []routing.Kind{routing.KindDijkstra, routing.KindAStar}, inv.Kinds)
	require.Equal(t, 2*time.Second, inv.Timeout())
	require.False(t, inv.Config.Compare.Parallel)

	inv, _, err = Parse([]string{"compare", "-graph", "g.json", "-from", "1", "-to", "9"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, routing.Kinds(), inv.Kinds)
	require.True(t, inv.Config.Compare.Parallel)
}

func TestParse_CompareErrors(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"missing to":       {"compare", "-graph", "g.json", "-from", "1"},
		"unknown algo":     {"compare", "-graph", "g.json", "-from", "1", "-to", "2", "-algos", "floyd"},
		"negative timeout": {"compare", "-graph", "g.json", "-from", "1", "-to", "2", "-timeout", "-1s"},
		"bad layout":       {"compare", "-graph", "g.json", "-from", "1", "-to", "2", "-layout", "spiral"},
	}
	for name, args := range cases {
		_, _, err := Parse(args, &bytes.Buffer{})
		require.Error(t, err, name)
		requireExitCode(t, err, 2)
	}
}

func TestParse_ConfigFileThenFlags(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "netroute.toml")
	body := `
[generate]
policy = "small_world"
nodes  = 30

[compare]
algorithms = ["bfs", "dijkstra"]
timeout    = "500ms"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	inv, _, err := Parse([]string{"-config", path, "generate", "-nodes", "40", "-out", "g.json"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "small_world", inv.Config.Generate.Policy)
	require.Equal(t, 40, inv.Config.Generate.Nodes, "flag overrides file")

	inv, _, err = Parse([]string{"-config", path, "compare", "-graph", "g.json", "-from", "1", "-to", "2"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, []routing.Kind{routing.KindBFS, routing.KindDijkstra}, inv.Kinds)
	require.Equal(t, 500*time.Millisecond, inv.Timeout())
}

func TestParse_BadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[generate]\nshape = 3\n"), 0o600))

	_, _, err := Parse([]string{"-config", path, "stats", "-graph", "g.json"}, &bytes.Buffer{})
	requireExitCode(t, err, 2)
	require.Contains(t, err.Error(), "shape")
}
