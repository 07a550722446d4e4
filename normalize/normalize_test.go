package normalize_test

import (
	"testing"

	"github.com/katalvlaran/ldgraph/core"
	"github.com/katalvlaran/ldgraph/loader"
	"github.com/katalvlaran/ldgraph/normalize"
	"github.com/stretchr/testify/require"
)

// TestScenario_BlankNodeNormalizationWithConflict is scenario S6: two
// blank entities resolve to the same IRI via BlankIRIResolver; one has
// types [Person], the other [Manager,Employee]; TypeConflictResolver
// drops Employee. After Normalize, hr:janed is {Person,Manager} and the
// blank-node register is empty.
func TestScenario_BlankNodeNormalizationWithConflict(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, loader.Load(g, []map[string]any{
		{"@type": []interface{}{"Person"}},
		{"@type": []interface{}{"Manager", "Employee"}},
	}))
	require.Len(t, g.BlankNodes(), 2)

	resolvers := normalize.Resolvers{
		BlankIRIResolver: func(v *core.Vertex) string { return "hr:janed" },
		TypeConflictResolver: func(existing, incoming []string) []string {
			out := make([]string, 0, len(existing)+len(incoming))
			seen := map[string]bool{}
			for _, id := range append(append([]string{}, existing...), incoming...) {
				if id == "Employee" || seen[id] {
					continue
				}
				seen[id] = true
				out = append(out, id)
			}
			return out
		},
	}
	require.NoError(t, normalize.Normalize(g, resolvers))

	require.Empty(t, g.BlankNodes())
	v, err := g.GetVertex("hr:janed")
	require.NoError(t, err)
	require.True(t, v.IsType("Person"))
	require.True(t, v.IsType("Manager"))
	require.False(t, v.IsType("Employee"))
}

func TestBlankTypesPass_AssignsTypeAndClearsRegister(t *testing.T) {
	g := core.NewGraph()
	_, err := g.CreateVertex("a")
	require.NoError(t, err)
	require.Contains(t, g.TypelessVertices(), "a")

	err = normalize.Normalize(g, normalize.Resolvers{
		BlankTypeResolver: func(v *core.Vertex) []string { return []string{"Thing"} },
	})
	require.NoError(t, err)
	require.NotContains(t, g.TypelessVertices(), "a")
}

func TestBlankIRIsPass_RenamesWhenTargetUnused(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, loader.Load(g, []map[string]any{
		{"name": []interface{}{map[string]interface{}{"@value": "anon"}}},
	}))
	blanks := g.BlankNodes()
	require.Len(t, blanks, 1)

	err := normalize.Normalize(g, normalize.Resolvers{
		BlankIRIResolver: func(v *core.Vertex) string { return "hr:stable" },
	})
	require.NoError(t, err)
	require.Empty(t, g.BlankNodes())
	require.True(t, g.HasVertex("hr:stable"))
}

func TestBlankIRIsPass_MergesOutgoingEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.CreateVertex("hr:janed", "Person")
	require.NoError(t, err)
	_, err = g.CreateVertex("hr:acme")
	require.NoError(t, err)

	require.NoError(t, loader.Load(g, []map[string]any{
		{"hr:worksFor": []interface{}{map[string]interface{}{"@id": "hr:acme"}}},
	}))
	blanks := g.BlankNodes()
	require.Len(t, blanks, 1)

	require.NoError(t, normalize.Normalize(g, normalize.Resolvers{
		BlankIRIResolver: func(v *core.Vertex) string { return "hr:janed" },
	}))

	require.Empty(t, g.BlankNodes())
	require.True(t, g.HasEdge("hr:worksFor", "hr:janed", "hr:acme"))
}
