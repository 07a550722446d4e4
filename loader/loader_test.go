package loader_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/ldgraph/core"
	"github.com/katalvlaran/ldgraph/loader"
	"github.com/stretchr/testify/require"
)

var errNotAnIRI = errors.New("loader_test: missing scheme separator")

// TestScenario_LoadListAndLanguageMap is scenario S4: a list-valued
// predicate, a per-language attribute, and two nested entities reachable
// via an edge, all in one expanded document.
func TestScenario_LoadListAndLanguageMap(t *testing.T) {
	doc := map[string]any{
		"@id": "hr:johnd",
		"hr:displayName": []interface{}{
			map[string]interface{}{"@value": "John Doe"},
			map[string]interface{}{"@value": "John D"},
		},
		"hr:description": []interface{}{
			map[string]interface{}{"@value": "en-d", "@language": "en"},
			map[string]interface{}{"@value": "fr-d", "@language": "fr"},
		},
		"hr:accounts": []interface{}{
			map[string]interface{}{
				"@id":   "hr:contact/a",
				"@type": []interface{}{"hr:Contact"},
				"hr:displayName": []interface{}{
					map[string]interface{}{"@value": "A"},
				},
			},
			map[string]interface{}{
				"@id":   "hr:contact/b",
				"@type": []interface{}{"hr:Contact"},
				"hr:displayName": []interface{}{
					map[string]interface{}{"@value": "B"},
				},
			},
		},
	}

	g := core.NewGraph()
	require.NoError(t, loader.Load(g, []map[string]any{doc}))

	johnd, err := g.GetVertex("hr:johnd")
	require.NoError(t, err)
	require.Len(t, johnd.Attributes().GetAll("hr:displayName"), 2)

	_, ok := johnd.Attributes().GetLanguage("hr:description", "en")
	require.True(t, ok)
	_, ok = johnd.Attributes().GetLanguage("hr:description", "fr")
	require.True(t, ok)

	accounts := johnd.Outgoing("hr:accounts")
	require.Len(t, accounts, 2)
	require.True(t, g.HasVertex("hr:contact/a"))
	require.True(t, g.HasVertex("hr:contact/b"))

	contactA, err := g.GetVertex("hr:contact/a")
	require.NoError(t, err)
	require.True(t, contactA.IsType("hr:Contact"))
}

// TestListUnwrapping checks an @list wrapper flattens in order, preserving
// insertion order of the underlying Append calls.
func TestListUnwrapping(t *testing.T) {
	doc := map[string]any{
		"@id": "a",
		"tags": []interface{}{
			map[string]interface{}{
				"@list": []interface{}{
					map[string]interface{}{"@value": "x"},
					map[string]interface{}{"@value": "y"},
				},
			},
		},
	}
	g := core.NewGraph()
	require.NoError(t, loader.Load(g, []map[string]any{doc}))

	v, err := g.GetVertex("a")
	require.NoError(t, err)
	all := v.Attributes().GetAll("tags")
	require.Len(t, all, 2)
	require.Equal(t, "x", all[0].Value)
	require.Equal(t, "y", all[1].Value)
}

// TestMergeOption checks WithMerge makes loadPredicate replace instead of
// append for literal values.
func TestMergeOption(t *testing.T) {
	doc := map[string]any{
		"@id": "a",
		"name": []interface{}{
			map[string]interface{}{"@value": "first"},
		},
	}
	g := core.NewGraph()
	require.NoError(t, loader.Load(g, []map[string]any{doc}, loader.WithMerge()))
	require.NoError(t, loader.Load(g, []map[string]any{doc}, loader.WithMerge()))

	v, err := g.GetVertex("a")
	require.NoError(t, err)
	require.Len(t, v.Attributes().GetAll("name"), 1)
}

func TestUniqueOption_RejectsDuplicateDefinition(t *testing.T) {
	docs := []map[string]any{
		{"@id": "a", "name": []interface{}{map[string]interface{}{"@value": "first"}}},
		{"@id": "a", "name": []interface{}{map[string]interface{}{"@value": "second"}}},
	}
	g := core.NewGraph()
	err := loader.Load(g, docs, loader.WithUnique())
	require.ErrorIs(t, err, loader.ErrDuplicateEntityDefinition)
}

func TestBlankNodeIDAssignedWhenIDMissing(t *testing.T) {
	doc := map[string]any{
		"name": []interface{}{map[string]interface{}{"@value": "anon"}},
	}
	g := core.NewGraph()
	require.NoError(t, loader.Load(g, []map[string]any{doc}))
	require.Len(t, g.BlankNodes(), 1)
}

func TestIdentityValidatorRejection(t *testing.T) {
	doc := map[string]any{"@id": "not-an-iri"}
	g := core.NewGraph()
	err := loader.Load(g, []map[string]any{doc}, loader.WithIdentityValidator(func(id string) error {
		if strings.Contains(id, ":") {
			return nil
		}
		return errNotAnIRI
	}))
	require.ErrorIs(t, err, loader.ErrInvalidIRI)
}

func TestTypeConflictResolver(t *testing.T) {
	g := core.NewGraph()
	_, err := g.CreateVertex("a", "Person")
	require.NoError(t, err)

	doc := map[string]any{"@id": "a", "@type": []interface{}{"Manager", "Employee"}}
	resolver := func(existing, incoming []string) []string {
		out := make([]string, 0, len(existing)+len(incoming))
		seen := map[string]bool{}
		for _, id := range append(existing, incoming...) {
			if id == "Employee" || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
		return out
	}
	require.NoError(t, loader.Load(g, []map[string]any{doc}, loader.WithTypeConflictResolver(resolver)))

	v, err := g.GetVertex("a")
	require.NoError(t, err)
	require.True(t, v.IsType("Person"))
	require.True(t, v.IsType("Manager"))
	require.False(t, v.IsType("Employee"))
}
