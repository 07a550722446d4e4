package core_test

import (
	"testing"

	"github.com/katalvlaran/ldgraph/core"
	"github.com/stretchr/testify/require"
)

// TestScenario_Rename is scenario S5: B has two outgoing edges, one
// incoming edge, and four attribute values across mixed languages;
// renaming to D must preserve all of it and leave B gone.
func TestScenario_Rename(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D1", "D2"} {
		_, err := g.CreateVertex(id)
		require.NoError(t, err)
	}
	b, err := g.GetVertex("B")
	require.NoError(t, err)

	require.NoError(t, b.Attributes().Append("name", "v1", "", false))
	require.NoError(t, b.Attributes().Append("name", "v2", "", false))
	require.NoError(t, b.Attributes().Append("desc", "en-v", "en", false))
	require.NoError(t, b.Attributes().Append("desc", "fr-v", "fr", false))

	_, err = g.CreateEdge("rel", "B", "D1")
	require.NoError(t, err)
	_, err = g.CreateEdge("rel", "B", "D2")
	require.NoError(t, err)
	_, err = g.CreateEdge("owns", "A", "B")
	require.NoError(t, err)

	renamed, err := g.RenameVertex(b, "D")
	require.NoError(t, err)
	require.Equal(t, "D", renamed.IRI())
	require.False(t, g.HasVertex("B"))

	require.ElementsMatch(t, renamed.Attributes().GetAll("name"), []core.AttributeValue{
		{Value: "v1"}, {Value: "v2"},
	})
	require.Len(t, renamed.Attributes().GetAll("desc"), 2)

	require.Len(t, g.GetOutgoingEdges("D", "rel"), 2)
	require.Len(t, g.GetIncomingEdges("D", "owns"), 1)
	require.Empty(t, g.GetOutgoingEdges("B", ""))
	require.Empty(t, g.GetIncomingEdges("B", ""))
}

func TestRenameVertex_NoOpWhenSameIRI(t *testing.T) {
	g := core.NewGraph()
	v, err := g.CreateVertex("A")
	require.NoError(t, err)

	renamed, err := g.RenameVertex(v, "A")
	require.NoError(t, err)
	require.Same(t, v, renamed)
}

func TestRenameVertex_DuplicateTarget(t *testing.T) {
	g := core.NewGraph()
	v, err := g.CreateVertex("A")
	require.NoError(t, err)
	_, err = g.CreateVertex("B")
	require.NoError(t, err)

	_, err = g.RenameVertex(v, "B")
	require.ErrorIs(t, err, core.ErrDuplicateVertex)
}
