package core_test

import (
	"testing"

	"github.com/katalvlaran/ldgraph/core"
	"github.com/stretchr/testify/require"
)

// TestScenario_AppendSetLanguage is scenario S3: append vs. set and
// language-slot replacement semantics.
func TestScenario_AppendSetLanguage(t *testing.T) {
	bag := core.NewAttributeBag()

	require.NoError(t, bag.Append("name", "John", "", false))
	require.NoError(t, bag.Append("name", "J", "", false))
	require.Len(t, bag.GetAll("name"), 2)
	first, ok := bag.Get("name")
	require.True(t, ok)
	require.Equal(t, "John", first.Value)

	require.NoError(t, bag.Append("desc", "en-v", "en", false))
	require.NoError(t, bag.Append("desc", "en-v2", "en", false))
	all := bag.GetAll("desc")
	require.Len(t, all, 1)
	require.Equal(t, "en-v2", all[0].Value)

	require.NoError(t, bag.Append("desc", "fr-v", "fr", false))
	require.Len(t, bag.GetAll("desc"), 2)
}

func TestAttributeBag_SetReplacesWholeList(t *testing.T) {
	bag := core.NewAttributeBag()
	require.NoError(t, bag.Append("name", "a", "", false))
	require.NoError(t, bag.Append("name", "b", "", false))
	require.NoError(t, bag.Set("name", "c", "", false))
	require.Equal(t, []core.AttributeValue{{Value: "c"}}, bag.GetAll("name"))
}

func TestAttributeBag_LanguageRequiresString(t *testing.T) {
	bag := core.NewAttributeBag()
	err := bag.Append("age", 42, "en", false)
	require.ErrorIs(t, err, core.ErrLanguageValueNotString)
}

func TestAttributeBag_JSONLiteral(t *testing.T) {
	bag := core.NewAttributeBag()
	doc := map[string]any{"a": 1}
	require.NoError(t, bag.Append("payload", doc, "", true))
	av, ok := bag.Get("payload")
	require.True(t, ok)
	require.Equal(t, core.JSONType, av.Type)
}

func TestAttributeBag_DeleteAndHas(t *testing.T) {
	bag := core.NewAttributeBag()
	require.NoError(t, bag.Append("name", "John", "", false))
	require.True(t, bag.Has("name", "John", ""))
	bag.Delete("name")
	require.False(t, bag.Has("name", "John", ""))
	require.Nil(t, bag.GetAll("name"))
}
