package core_test

import (
	"testing"

	"github.com/katalvlaran/netroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamond builds 1-2-3-4 with a 1-3 shortcut.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"1", "2", "3", "4"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"1", "2", 1}, {"2", "3", 1}, {"1", "3", 5}, {"3", "4", 1}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	assert.ErrorIs(t, g.AddVertex("A"), core.ErrDuplicateNode)
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdgeErrors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	tests := []struct {
		name string
		u, v string
		w    int64
		want error
	}{
		{"unknown endpoint", "A", "Z", 1, core.ErrUnknownNode},
		{"empty id", "", "B", 1, core.ErrEmptyVertexID},
		{"loop", "A", "A", 1, core.ErrLoopNotAllowed},
		{"zero weight", "A", "B", 0, core.ErrInvalidWeight},
		{"negative weight", "A", "B", -3, core.ErrInvalidWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.u, tc.v, tc.w)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	eid, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	_, err = g.AddEdge("B", "A", 2)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge, "reverse orientation is the same edge")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestSignedWeights(t *testing.T) {
	g := core.NewGraph(core.WithSignedWeights())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	_, err := g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
	_, err = g.AddEdge("A", "B", -2)
	require.NoError(t, err)
	assert.True(t, g.SignedWeights())
}

func TestHasEdgeAndWeight(t *testing.T) {
	g := diamond(t)
	assert.True(t, g.HasEdge("1", "2"))
	assert.True(t, g.HasEdge("2", "1"))
	assert.False(t, g.HasEdge("1", "4"))

	w, err := g.Weight("3", "1")
	require.NoError(t, err)
	assert.EqualValues(t, 5, w)

	_, err = g.Weight("1", "4")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestSetWeightKeepsOldEdge(t *testing.T) {
	g := diamond(t)
	before, err := g.Edge("1", "3")
	require.NoError(t, err)

	require.NoError(t, g.SetWeight("3", "1", 2))
	after, err := g.Edge("1", "3")
	require.NoError(t, err)

	assert.EqualValues(t, 5, before.Weight)
	assert.EqualValues(t, 2, after.Weight)
	assert.Equal(t, before.ID, after.ID)

	assert.ErrorIs(t, g.SetWeight("1", "3", 0), core.ErrInvalidWeight)
	assert.ErrorIs(t, g.SetWeight("1", "4", 1), core.ErrEdgeNotFound)
}

func TestRemoveVertexCascades(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.RemoveVertex("3"))

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge("2", "3"))
	assert.False(t, g.HasEdge("4", "3"))

	nbs, err := g.NeighborIDs("4")
	require.NoError(t, err)
	assert.Empty(t, nbs)

	assert.ErrorIs(t, g.RemoveVertex("3"), core.ErrUnknownNode)
}

func TestRemoveEdge(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.RemoveEdge("3", "1"))
	assert.False(t, g.HasEdge("1", "3"))
	assert.ErrorIs(t, g.RemoveEdge("1", "3"), core.ErrEdgeNotFound)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestNeighbors(t *testing.T) {
	g := diamond(t)

	ids, err := g.NeighborIDs("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4"}, ids)

	edges, err := g.Neighbors("3")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, "e2", edges[0].ID)
	assert.Equal(t, "2", edges[0].Other("3"))

	_, err = g.Neighbors("9")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	deg, err := g.Degree("1")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

func TestNaturalOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"10", "b", "2", "a", "1"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"1", "2", "10", "a", "b"}, g.Vertices())
	assert.True(t, core.LessID("9", "10"))
	assert.False(t, core.LessID("x", "10"))
}

func TestEdgesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		require.NoError(t, g.AddVertex(string(rune('a'+i))))
	}
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge(string(rune('a'+i)), string(rune('a'+i+1)), 1)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 11)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, "e11", edges[10].ID)
}

func TestDensity(t *testing.T) {
	tests := []struct {
		name string
		g    func() *core.Graph
		want float64
	}{
		{"empty", func() *core.Graph { return core.NewGraph() }, 0},
		{"single", func() *core.Graph {
			g := core.NewGraph()
			_ = g.AddVertex("1")
			return g
		}, 0},
		{"diamond", func() *core.Graph { return diamond(t) }, 2.0 * 4 / (4 * 3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.g().Density(), 1e-12)
		})
	}
}

func TestIsConnected(t *testing.T) {
	assert.True(t, core.NewGraph().IsConnected())

	g := diamond(t)
	assert.True(t, g.IsConnected())

	require.NoError(t, g.AddVertex("5"))
	assert.False(t, g.IsConnected())
	assert.Equal(t, [][]string{{"1", "2", "3", "4"}, {"5"}}, g.Components())
}

func TestStats(t *testing.T) {
	st := diamond(t).Stats()
	assert.Equal(t, 4, st.Vertices)
	assert.Equal(t, 4, st.Edges)
	assert.True(t, st.Connected)
	assert.Equal(t, 1, st.Components)
	assert.EqualValues(t, 1, st.MinWeight)
	assert.EqualValues(t, 5, st.MaxWeight)
	assert.EqualValues(t, 8, st.TotalWeight)

	empty := core.NewGraph().Stats()
	assert.Zero(t, empty.MinWeight)
	assert.Zero(t, empty.Components)
}

func TestCloneAndClear(t *testing.T) {
	g := diamond(t)
	c := g.Clone()

	require.NoError(t, c.RemoveVertex("4"))
	assert.True(t, g.HasVertex("4"), "clone edits must not reach the source")

	eid, err := c.AddEdge("2", "4x", 1)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	assert.Empty(t, eid)

	require.NoError(t, c.AddVertex("5"))
	eid, err = c.AddEdge("1", "5", 1)
	require.NoError(t, err)
	assert.Equal(t, "e5", eid, "edge counter carries over")

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	eid, err = g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
}
