// Package core provides the in-memory labeled graph that backs ldgraph:
// thread-safe Vertex, Edge, and AttributeBag primitives plus the IndexSet
// that keeps edge lookup by label, by source, by target, and by
// (source,label)/(target,label) all O(1) expected.
//
// The Graph G = (V,E) models JSON-LD triples: vertices are subjects,
// edges are predicate-labeled references between subjects, and each
// vertex additionally carries an AttributeBag of literal (non-reference)
// predicate values.
//
//   - Vertices and edges are owned exclusively by the Graph; handles
//     returned to callers (*Vertex, *Edge) are valid until the owning
//     vertex is removed, after which retaining the handle is undefined
//     behavior (see RemoveVertex).
//   - IndexSet mirrors five keyed edge-ID sets per the design: by label,
//     by (vertex,direction), and by (vertex,direction,label). Every
//     create/remove updates all five atomically under muEdgeAdj.
//   - Two separate locks, muVert and muEdgeAdj, minimize contention
//     between vertex-catalog churn and edge/index churn, the same split
//     lvlath's core.Graph uses for its vertex map vs. adjacency list.
//
// Enumeration methods (GetEdges, GetIncomingEdges, GetVertices, ...)
// take their read lock only long enough to copy matching handles into a
// freshly allocated slice, then return it: callers never hold a lock
// across their own iteration, and a returned slice is safe to range over
// even if the graph is mutated concurrently afterward.
package core
