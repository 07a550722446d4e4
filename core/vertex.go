package core

import "strings"

// BlankPrefix is the reserved IRI prefix identifying blank-node vertices.
const BlankPrefix = "_:b"

// Vertex is a node in the graph: an expanded IRI, an attribute bag of
// literal predicate values, and non-owning handles back to the owning
// Graph for neighborhood queries. Vertex values are created exclusively by
// Graph.CreateVertex or implicitly by the loader; they are destroyed only
// by Graph.RemoveVertex, which also purges every incident edge and index
// entry. Retaining a *Vertex past its removal is undefined behavior.
type Vertex struct {
	iri   string
	attrs *AttributeBag
	graph *Graph
}

func newVertex(iri string, g *Graph) *Vertex {
	return &Vertex{iri: iri, attrs: NewAttributeBag(), graph: g}
}

// IRI returns the vertex's expanded identifier.
func (v *Vertex) IRI() string { return v.iri }

// IsBlank reports whether the vertex's IRI is a blank-node IRI.
func (v *Vertex) IsBlank() bool { return strings.HasPrefix(v.iri, BlankPrefix) }

// Attributes exposes the vertex's literal attribute bag.
func (v *Vertex) Attributes() *AttributeBag { return v.attrs }

// SetType records ids as @type edges from v, creating each target vertex
// if absent and skipping ids already recorded as a type.
func (v *Vertex) SetType(ids ...string) error {
	for _, id := range ids {
		expanded := v.graph.prefixes.ExpandRaw(id)
		if v.graph.HasOutgoing(v.iri, TypeLabel, expanded) {
			continue
		}
		if _, err := v.graph.getOrCreateVertex(expanded); err != nil {
			return err
		}
		if _, err := v.graph.CreateEdge(TypeLabel, v.iri, expanded); err != nil {
			return err
		}
	}
	return nil
}

// RemoveType removes the @type edges from v to each named type, if present.
func (v *Vertex) RemoveType(ids ...string) error {
	for _, id := range ids {
		expanded := v.graph.prefixes.ExpandRaw(id)
		if err := v.graph.removeEdgeTriple(TypeLabel, v.iri, expanded); err != nil && err != ErrEdgeNotFound {
			return err
		}
	}
	return nil
}

// IsType reports whether v has an @type edge to the vertex named id.
func (v *Vertex) IsType(id string) bool {
	expanded := v.graph.prefixes.ExpandRaw(id)
	return v.graph.HasOutgoing(v.iri, TypeLabel, expanded)
}

// Types returns the vertices v declares membership in via @type edges.
func (v *Vertex) Types() []*Vertex {
	return v.graph.collectOutgoingVertices(v.iri, TypeLabel)
}

// Instances returns the vertices that declare membership in v via @type edges.
func (v *Vertex) Instances() []*Vertex {
	return v.graph.collectIncomingVertices(v.iri, TypeLabel)
}

// SetOutgoing creates label(v -> otherID). If createIfMissing is false and
// the other endpoint does not exist, ErrVertexNotFound is returned.
func (v *Vertex) SetOutgoing(label, otherID string, createIfMissing bool) (*Edge, error) {
	return v.graph.setDirectedEdge(v.iri, label, otherID, true, createIfMissing)
}

// SetIncoming creates label(otherID -> v). If createIfMissing is false and
// the other endpoint does not exist, ErrVertexNotFound is returned.
func (v *Vertex) SetIncoming(label, otherID string, createIfMissing bool) (*Edge, error) {
	return v.graph.setDirectedEdge(v.iri, label, otherID, false, createIfMissing)
}

// EdgeFilter restricts RemoveOutgoing/RemoveIncoming candidates: by exact
// IRI match when Other is non-empty, or by predicate when Match is set.
type EdgeFilter struct {
	Other string
	Match func(other *Vertex) bool
}

func (f EdgeFilter) accepts(g *Graph, otherID string) bool {
	if f.Other != "" {
		return g.prefixes.ExpandRaw(f.Other) == otherID
	}
	if f.Match != nil {
		other, err := g.GetVertex(otherID)
		if err != nil {
			return false
		}
		return f.Match(other)
	}
	return true
}

// RemoveOutgoing removes outgoing edges from v, optionally restricted by
// label and/or filter.
func (v *Vertex) RemoveOutgoing(label string, filter EdgeFilter) error {
	return v.graph.removeEdgesMatching(v.iri, label, filter, true)
}

// RemoveIncoming removes incoming edges to v, optionally restricted by
// label and/or filter.
func (v *Vertex) RemoveIncoming(label string, filter EdgeFilter) error {
	return v.graph.removeEdgesMatching(v.iri, label, filter, false)
}

// HasOutgoing reports whether v has an outgoing edge, optionally
// restricted by label and/or a specific other endpoint IRI.
func (v *Vertex) HasOutgoing(label, otherID string) bool {
	return v.graph.hasDirected(v.iri, label, otherID, true)
}

// HasIncoming reports whether v has an incoming edge, optionally
// restricted by label and/or a specific other endpoint IRI.
func (v *Vertex) HasIncoming(label, otherID string) bool {
	return v.graph.hasDirected(v.iri, label, otherID, false)
}

// Outgoing returns v's outgoing edges, optionally filtered by label ("" = all).
func (v *Vertex) Outgoing(label string) []*Edge {
	return v.graph.collectEdges(keyOutFor(v.iri, label), true)
}

// Incoming returns v's incoming edges, optionally filtered by label ("" = all).
func (v *Vertex) Incoming(label string) []*Edge {
	return v.graph.collectEdges(keyInFor(v.iri, label), false)
}

func keyOutFor(vid, label string) string {
	if label == "" {
		return keyOut(vid)
	}
	return keyOutLabel(vid, label)
}

func keyInFor(vid, label string) string {
	if label == "" {
		return keyIn(vid)
	}
	return keyInLabel(vid, label)
}
