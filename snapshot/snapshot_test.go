package snapshot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netroute/builder"
	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/layout"
	"github.com/katalvlaran/netroute/snapshot"
)

type triple struct {
	u, v string
	w    int64
}

func triples(g *core.Graph) []triple {
	var out []triple
	for _, e := range g.Edges() {
		out = append(out, triple{e.From, e.To, e.Weight})
	}

	return out
}

func requireSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	require.Equal(t, want.Vertices(), got.Vertices())
	require.Equal(t, triples(want), triples(got))
}

func TestRoundTrip_AllPolicies(t *testing.T) {
	for _, p := range builder.Policies() {
		t.Run(p.String(), func(t *testing.T) {
			g, err := builder.Generate(p, 30, 70, 5)
			require.NoError(t, err)
			pos := layout.Circular{Radius: 0.5}.Layout(g)

			var buf bytes.Buffer
			require.NoError(t, snapshot.Save(&buf, g, pos))
			back, backPos, err := snapshot.Load(&buf)
			require.NoError(t, err)

			requireSameGraph(t, g, back)
			assert.Equal(t, pos, backPos)
		})
	}
}

func TestRoundTrip_ManualEdits(t *testing.T) {
	g, err := builder.Generate(builder.PolicyGrid, 9, 0, 2)
	require.NoError(t, err)
	require.NoError(t, g.RemoveVertex("5"))
	require.NoError(t, g.AddVertex("hub"))
	_, err = g.AddEdge("hub", "1", 7)
	require.NoError(t, err)
	require.NoError(t, g.SetWeight("1", "2", 3))

	var buf bytes.Buffer
	require.NoError(t, snapshot.Save(&buf, g, nil))
	back, pos, err := snapshot.Load(&buf)
	require.NoError(t, err)
	requireSameGraph(t, g, back)
	assert.NotNil(t, pos)
	assert.Empty(t, pos)
}

func TestLoad_IntegerIDsAndNoPositions(t *testing.T) {
	doc := `{"nodes": [1, 2, "x"], "edges": [[1, 2, {"weight": 4}], ["2", "x", {"weight": 1}]]}`
	g, pos, err := snapshot.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "x"}, g.Vertices())
	w, err := g.Weight("2", "1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), w)
	assert.Empty(t, pos)
}

func TestSave_WritesStringIDs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("1"))
	require.NoError(t, g.AddVertex("2"))
	_, err := g.AddEdge("1", "2", 6)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, snapshot.Save(&buf, g, layout.Positions{"1": {X: 1, Y: 2}, "ghost": {}}))
	out := buf.String()
	assert.Contains(t, out, `"1"`)
	assert.Contains(t, out, `"weight": 6`)
	assert.NotContains(t, out, "ghost")
}

func TestLoad_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":          `{"nodes": [`,
		"missing edges":     `{"nodes": ["1"]}`,
		"missing nodes":     `{"edges": []}`,
		"short edge":        `{"nodes": ["1","2"], "edges": [["1","2"]]}`,
		"weight not int":    `{"nodes": ["1","2"], "edges": [["1","2",{"weight":"heavy"}]]}`,
		"missing weight":    `{"nodes": ["1","2"], "edges": [["1","2",{}]]}`,
		"zero weight":       `{"nodes": ["1","2"], "edges": [["1","2",{"weight":0}]]}`,
		"negative weight":   `{"nodes": ["1","2"], "edges": [["1","2",{"weight":-2}]]}`,
		"duplicate node":    `{"nodes": ["1","1"], "edges": []}`,
		"unknown endpoint":  `{"nodes": ["1"], "edges": [["1","9",{"weight":1}]]}`,
		"duplicate edge":    `{"nodes": ["1","2"], "edges": [["1","2",{"weight":1}],["2","1",{"weight":2}]]}`,
		"self loop":         `{"nodes": ["1"], "edges": [["1","1",{"weight":1}]]}`,
		"empty id":          `{"nodes": [""], "edges": []}`,
		"bad position":      `{"nodes": ["1"], "edges": [], "positions": {"1": [0]}}`,
		"orphan position":   `{"nodes": ["1"], "edges": [], "positions": {"2": [0, 0]}}`,
		"fractional int id": `{"nodes": [1.5], "edges": []}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			g, pos, err := snapshot.Load(strings.NewReader(doc))
			assert.ErrorIs(t, err, snapshot.ErrMalformedSnapshot)
			assert.Nil(t, g)
			assert.Nil(t, pos)
		})
	}
}

func TestLoad_SignedWeightsOption(t *testing.T) {
	doc := `{"nodes": ["1","2"], "edges": [["1","2",{"weight":-2}]]}`
	g, _, err := snapshot.Load(strings.NewReader(doc), snapshot.WithGraphOptions(core.WithSignedWeights()))
	require.NoError(t, err)
	w, _ := g.Weight("1", "2")
	assert.Equal(t, int64(-2), w)
}

func TestFiles_Compression(t *testing.T) {
	g, err := builder.Generate(builder.PolicyScaleFree, 200, 600, 11)
	require.NoError(t, err)
	pos := layout.Random{Seed: 4}.Layout(g)
	dir := t.TempDir()

	sizes := map[string]int64{}
	for _, name := range []string{"g.json", "g.json.gz", "g.json.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, snapshot.SaveFile(path, g, pos), name)
		back, backPos, err := snapshot.LoadFile(path)
		require.NoError(t, err, name)
		requireSameGraph(t, g, back)
		assert.Equal(t, pos, backPos)

		st, err := os.Stat(path)
		require.NoError(t, err)
		sizes[name] = st.Size()
	}
	assert.Less(t, sizes["g.json.gz"], sizes["g.json"])
	assert.Less(t, sizes["g.json.zst"], sizes["g.json"])
}

func TestLoadFile_CorruptCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))
	_, _, err := snapshot.LoadFile(path)
	assert.ErrorIs(t, err, snapshot.ErrMalformedSnapshot)
}

func TestCompressionFor(t *testing.T) {
	assert.Equal(t, snapshot.Gzip, snapshot.CompressionFor("a/b.json.GZ"))
	assert.Equal(t, snapshot.Zstd, snapshot.CompressionFor("b.zst"))
	assert.Equal(t, snapshot.None, snapshot.CompressionFor("b.json"))
	assert.Equal(t, "zstd", snapshot.Zstd.String())
	assert.Contains(t, snapshot.Schema(), "prefixItems")
}
