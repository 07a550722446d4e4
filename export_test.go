package ldgraph_test

import (
	"testing"

	"github.com/katalvlaran/ldgraph"
	"github.com/katalvlaran/ldgraph/core"
	"github.com/stretchr/testify/require"
)

func TestExporter_ToExpanded(t *testing.T) {
	g := core.NewGraph()
	_, err := g.CreateVertex("A", "Person")
	require.NoError(t, err)
	_, err = g.CreateVertex("B")
	require.NoError(t, err)
	_, err = g.CreateEdge("knows", "A", "B")
	require.NoError(t, err)

	a, err := g.GetVertex("A")
	require.NoError(t, err)
	require.NoError(t, a.Attributes().Append("name", "Alice", "", false))

	exp := ldgraph.NewExporter(g, g.ContextStore())
	out := exp.ToExpanded()

	graphNodes, ok := out["@graph"].([]any)
	require.True(t, ok)
	require.Len(t, graphNodes, 3) // A, B, and the Person type vertex

	var nodeA map[string]any
	for _, n := range graphNodes {
		m := n.(map[string]any)
		if m["@id"] == "A" {
			nodeA = m
		}
	}
	require.NotNil(t, nodeA)
	require.Equal(t, []string{"Person"}, nodeA["@type"])
	refs, ok := nodeA["knows"].([]any)
	require.True(t, ok)
	require.Len(t, refs, 1)
	require.Equal(t, "B", refs[0].(map[string]any)["@id"])
}

func TestExporter_ToExpanded_IncludesNonRoots(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.CreateVertex("A")
	_, _ = g.CreateVertex("B")
	_, _ = g.CreateEdge("knows", "A", "B")

	exp := ldgraph.NewExporter(g, g.ContextStore())
	out := exp.ToExpanded()
	require.Len(t, out["@graph"].([]any), 2) // ToExpanded covers every vertex, not just roots
}
