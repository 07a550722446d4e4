package core_test

import (
	"testing"

	"github.com/katalvlaran/ldgraph/core"
	"github.com/stretchr/testify/require"
)

// TestScenario_CreateAndTraverse is scenario S1 from the design: build
// A, B, C with rel(A,B), rel(A,C), worksFor(A,C), then exercise every
// traversal query against them.
func TestScenario_CreateAndTraverse(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_, err := g.CreateVertex(id)
		require.NoError(t, err)
	}
	_, err := g.CreateEdge("rel", "A", "B")
	require.NoError(t, err)
	_, err = g.CreateEdge("rel", "A", "C")
	require.NoError(t, err)
	_, err = g.CreateEdge("worksFor", "A", "C")
	require.NoError(t, err)

	require.Len(t, g.GetEdges(""), 3)
	require.Len(t, g.GetEdges("rel"), 2)

	out := g.GetOutgoingEdges("A", "rel")
	require.Len(t, out, 2)
	targets := map[string]bool{}
	for _, e := range out {
		targets[e.To] = true
	}
	require.True(t, targets["B"] && targets["C"])

	incoming := g.GetIncomingVertices("rel")
	require.Len(t, incoming, 2)
	incomingIDs := map[string]bool{}
	for _, v := range incoming {
		incomingIDs[v.IRI()] = true
	}
	require.True(t, incomingIDs["B"] && incomingIDs["C"])

	require.True(t, g.HasEdge("rel", "A", "B"))
	require.False(t, g.HasEdge("worksFor", "A", "B"))
}

func TestCreateEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.CreateVertex("A")
	require.NoError(t, err)

	_, err = g.CreateEdge("rel", "A", "A")
	require.ErrorIs(t, err, core.ErrCyclicEdge)

	_, err = g.CreateEdge("rel", "A", "missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.CreateVertex("B")
	require.NoError(t, err)
	_, err = g.CreateEdge("rel", "A", "B")
	require.NoError(t, err)
	_, err = g.CreateEdge("rel", "A", "B")
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestRemoveVertex_CascadesEdgesAndIndices(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.CreateVertex("A")
	_, _ = g.CreateVertex("B")
	_, err := g.CreateEdge("rel", "A", "B")
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex("B"))
	require.Equal(t, 0, g.EdgeCount())
	require.Empty(t, g.GetEdges(""))
	require.False(t, g.HasVertex("B"))
}

func TestInvalidArgument(t *testing.T) {
	g := core.NewGraph()
	_, err := g.CreateVertex("")
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = g.GetVertex("")
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = g.CreateEdge("", "A", "B")
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestVertexTypes(t *testing.T) {
	g := core.NewGraph()
	v, err := g.CreateVertex("A", "Person")
	require.NoError(t, err)
	require.True(t, v.IsType("Person"))
	require.False(t, v.IsType("Manager"))

	types := v.Types()
	require.Len(t, types, 1)
	require.Equal(t, "Person", types[0].IRI())

	require.NoError(t, v.RemoveType("Person"))
	require.False(t, v.IsType("Person"))
}

func TestBlankAndTypelessRegisters(t *testing.T) {
	g := core.NewGraph()
	_, err := g.CreateVertex("_:b-1")
	require.NoError(t, err)
	require.Contains(t, g.BlankNodes(), "_:b-1")
	require.Contains(t, g.TypelessVertices(), "_:b-1")

	_, err = g.CreateVertex("typed", "Person")
	require.NoError(t, err)
	require.NotContains(t, g.TypelessVertices(), "typed")
}
