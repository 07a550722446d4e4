package core

import "sort"

// SnapshotVertex is the serialized form of a single vertex.
type SnapshotVertex struct {
	IRI        string                      `json:"iri"`
	Attributes map[string][]AttributeValue `json:"attributes,omitempty"`
}

// SnapshotEdge is the serialized form of a single edge.
type SnapshotEdge struct {
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// Snapshot is the canonical, deterministic serialized form of a Graph:
// vertices, edges, and the full index-set contents, keyed and sorted for
// reproducible diffs (e.g. golden-file tests).
type Snapshot struct {
	Vertices []SnapshotVertex        `json:"vertices"`
	Edges    []SnapshotEdge          `json:"edges"`
	Indices  map[string][]string     `json:"indices"`
}

// Snapshot captures the graph's full current state.
func (g *Graph) Snapshot() Snapshot {
	g.muVert.RLock()
	vertexIDs := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		vertexIDs = append(vertexIDs, id)
	}
	sort.Strings(vertexIDs)

	vertices := make([]SnapshotVertex, 0, len(vertexIDs))
	for _, id := range vertexIDs {
		v := g.vertices[id]
		attrs := make(map[string][]AttributeValue)
		predicates := v.attrs.Predicates()
		sort.Strings(predicates)
		for _, p := range predicates {
			attrs[p] = v.attrs.GetAll(p)
		}
		vertices = append(vertices, SnapshotVertex{IRI: id, Attributes: attrs})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	edgeIDs := make([]string, 0, len(g.edges))
	for id := range g.edges {
		edgeIDs = append(edgeIDs, id)
	}
	sort.Strings(edgeIDs)

	edges := make([]SnapshotEdge, 0, len(edgeIDs))
	for _, id := range edgeIDs {
		e := g.edges[id]
		edges = append(edges, SnapshotEdge{Label: e.Label, From: e.From, To: e.To})
	}
	indices := g.index.raw()
	g.muEdgeAdj.RUnlock()

	return Snapshot{Vertices: vertices, Edges: edges, Indices: indices}
}
