package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/ldgraph/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentCreateEdge mirrors the teacher's concurrency style: many
// goroutines create edges from a shared hub vertex, and all must land
// without racing the index set.
func TestConcurrentCreateEdge(t *testing.T) {
	g := core.NewGraph()
	_, err := g.CreateVertex("hub")
	require.NoError(t, err)

	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			target := fmt.Sprintf("v%d", id)
			_, err := g.CreateVertex(target)
			require.NoError(t, err)
			_, err = g.CreateEdge("rel", "hub", target)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Len(t, g.GetOutgoingEdges("hub", "rel"), num)
}

// TestConcurrentReadsDuringStableState checks concurrent read-only
// traversal does not race when no mutation is in flight.
func TestConcurrentReadsDuringStableState(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.CreateVertex("hub")
	for i := 0; i < 50; i++ {
		target := fmt.Sprintf("v%d", i)
		_, _ = g.CreateVertex(target)
		_, _ = g.CreateEdge("rel", "hub", target)
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			require.Len(t, g.GetOutgoingEdges("hub", "rel"), 50)
			require.Len(t, g.GetOutgoingVertices("rel"), 1) // all 50 "rel" edges share the same source, "hub"
			require.Len(t, g.GetIncomingVertices("rel"), 50)
		}()
	}
	wg.Wait()
}
