package core

import (
	"sort"
	"sync"

	"github.com/katalvlaran/ldgraph/iri"
	"github.com/katalvlaran/ldgraph/ldcontext"
)

// VertexFactory allows subclassing the vertex representation. Returning a
// nil *Vertex fails the creating operation with ErrInvalidArgument.
type VertexFactory func(vertexIRI string, g *Graph) *Vertex

func defaultVertexFactory(vertexIRI string, g *Graph) *Vertex {
	return newVertex(vertexIRI, g)
}

// Graph owns every vertex and edge in the store plus the index set that
// makes traversal O(1) expected. Two locks guard it: muVert for the
// vertex catalog, muEdgeAdj for the edge catalog and IndexSet, mirroring
// the split used by graphs whose vertex churn and edge churn have
// different contention shapes.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	vertices map[string]*Vertex
	edges    map[string]Edge // identity -> edge
	index    *IndexSet

	blankNodes map[string]struct{}
	typeless   map[string]struct{}

	prefixes *iri.Registry
	contexts *ldcontext.Store
	factory  VertexFactory
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithPrefixRegistry supplies a pre-populated IRI registry instead of a
// fresh one.
func WithPrefixRegistry(r *iri.Registry) Option {
	return func(g *Graph) { g.prefixes = r }
}

// WithContextStore supplies a pre-populated context store instead of a
// fresh one.
func WithContextStore(s *ldcontext.Store) Option {
	return func(g *Graph) { g.contexts = s }
}

// WithVertexFactory overrides vertex construction.
func WithVertexFactory(f VertexFactory) Option {
	return func(g *Graph) { g.factory = f }
}

// NewGraph returns an empty graph.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		vertices:   make(map[string]*Vertex),
		edges:      make(map[string]Edge),
		index:      newIndexSet(),
		blankNodes: make(map[string]struct{}),
		typeless:   make(map[string]struct{}),
		prefixes:   iri.NewRegistry(),
		contexts:   ldcontext.NewStore(),
		factory:    defaultVertexFactory,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// --- prefix / context passthrough -----------------------------------------

// SetPrefix registers a compaction prefix. See iri.Registry.SetPrefix.
func (g *Graph) SetPrefix(prefix, base string) error { return g.prefixes.SetPrefix(prefix, base) }

// RemovePrefix unregisters a compaction prefix.
func (g *Graph) RemovePrefix(prefix string) { g.prefixes.RemovePrefix(prefix) }

// ExpandIRI expands a compact IRI to its full form. If validate is true,
// the result is run through iri.Validate and a non-nil error is returned
// alongside it on failure.
func (g *Graph) ExpandIRI(in string, validate bool) (string, error) {
	return g.prefixes.Expand(in, validate)
}

// CompactIRI compacts a full IRI using registered prefixes.
func (g *Graph) CompactIRI(in string) string { return g.prefixes.Compact(in) }

// AddContext registers a named JSON-LD context document.
func (g *Graph) AddContext(url string, doc any) error { return g.contexts.AddContext(url, doc) }

// GetContext resolves a context document by URL.
func (g *Graph) GetContext(url string) (any, error) { return g.contexts.GetContext(url) }

// ContextStore exposes the underlying context store, e.g. to build a
// json-gold document loader for Parse/ToJSON.
func (g *Graph) ContextStore() *ldcontext.Store { return g.contexts }

// --- vertex lifecycle ------------------------------------------------------

// CreateVertex creates (or returns, idempotently) the vertex named id and
// records each of typeIDs as an @type edge from it.
func (g *Graph) CreateVertex(id string, typeIDs ...string) (*Vertex, error) {
	if id == "" {
		return nil, ErrInvalidArgument
	}
	v, err := g.getOrCreateVertex(g.prefixes.ExpandRaw(id))
	if err != nil {
		return nil, err
	}
	if len(typeIDs) > 0 {
		if err := v.SetType(typeIDs...); err != nil {
			return nil, err
		}
	}
	if len(v.Outgoing(TypeLabel)) > 0 {
		g.UnmarkTypeless(v.iri)
	}
	return v, nil
}

func (g *Graph) getOrCreateVertex(expandedID string) (*Vertex, error) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, ok := g.vertices[expandedID]; ok {
		return v, nil
	}
	v := g.factory(expandedID, g)
	if v == nil {
		return nil, ErrInvalidArgument
	}
	g.vertices[expandedID] = v
	if v.IsBlank() {
		g.markBlankLocked(expandedID)
	}
	g.markTypelessLocked(expandedID)
	return v, nil
}

// GetVertex looks up a vertex by (compact or full) id.
func (g *Graph) GetVertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrInvalidArgument
	}
	expanded := g.prefixes.ExpandRaw(id)

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[expanded]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return v, nil
}

// HasVertex reports whether id (compact or full) names a live vertex.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	expanded := g.prefixes.ExpandRaw(id)

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[expanded]
	return ok
}

// RemoveVertex deletes the vertex named id and every edge incident to it,
// purging all index entries and the blank-node/typeless registers.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrInvalidArgument
	}
	expanded := g.prefixes.ExpandRaw(id)

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[expanded]; !ok {
		return ErrVertexNotFound
	}

	for eid, e := range g.edges {
		if e.From == expanded || e.To == expanded {
			g.index.removeEdge(e, eid)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, expanded)
	delete(g.blankNodes, expanded)
	delete(g.typeless, expanded)

	return nil
}

// GetVertices returns every vertex, in no particular order.
func (g *Graph) GetVertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	return out
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// --- blank-node / typeless registers ---------------------------------------

func (g *Graph) markBlankLocked(id string) { g.blankNodes[id] = struct{}{} }

func (g *Graph) markTypelessLocked(id string) { g.typeless[id] = struct{}{} }

func (g *Graph) markTypeless(id string) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.typeless[id] = struct{}{}
}

// UnmarkTypeless removes id from the typeless register (called once it
// gains its first @type edge).
func (g *Graph) UnmarkTypeless(id string) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	delete(g.typeless, id)
}

// BlankNodes returns every vertex IRI currently registered as blank.
func (g *Graph) BlankNodes() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.blankNodes))
	for id := range g.blankNodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// TypelessVertices returns every vertex IRI currently registered as typeless.
func (g *Graph) TypelessVertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.typeless))
	for id := range g.typeless {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// --- edge lifecycle ----------------------------------------------------------

// CreateEdge creates edge (label, from, to). Both endpoints must already
// exist (ErrVertexNotFound), from must differ from to (ErrCyclicEdge), and
// the triple must not already exist (ErrDuplicateEdge).
func (g *Graph) CreateEdge(label, from, to string) (*Edge, error) {
	if label == "" || from == "" || to == "" {
		return nil, ErrInvalidArgument
	}
	label = g.prefixes.ExpandRaw(label)
	from = g.prefixes.ExpandRaw(from)
	to = g.prefixes.ExpandRaw(to)

	if from == to {
		return nil, ErrCyclicEdge
	}

	g.muVert.RLock()
	_, fromOK := g.vertices[from]
	_, toOK := g.vertices[to]
	g.muVert.RUnlock()
	if !fromOK || !toOK {
		return nil, ErrVertexNotFound
	}

	e := Edge{Label: label, From: from, To: to}
	id := e.identity()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, exists := g.edges[id]; exists {
		return nil, ErrDuplicateEdge
	}
	g.edges[id] = e
	g.index.addEdge(e, id)

	return &e, nil
}

// RemoveEdge deletes e. Returns ErrEdgeNotFound if it is not present.
func (g *Graph) RemoveEdge(e Edge) error {
	return g.removeEdgeTriple(e.Label, e.From, e.To)
}

func (g *Graph) removeEdgeTriple(label, from, to string) error {
	label = g.prefixes.ExpandRaw(label)
	from = g.prefixes.ExpandRaw(from)
	to = g.prefixes.ExpandRaw(to)
	id := edgeIdentity(label, from, to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	g.index.removeEdge(e, id)

	return nil
}

// HasEdge reports whether (label, from, to) names a live edge.
func (g *Graph) HasEdge(label, from, to string) bool {
	label = g.prefixes.ExpandRaw(label)
	from = g.prefixes.ExpandRaw(from)
	to = g.prefixes.ExpandRaw(to)
	id := edgeIdentity(label, from, to)

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[id]
	return ok
}

// GetEdges returns every edge, optionally filtered by label ("" = all).
func (g *Graph) GetEdges(label string) []*Edge {
	if label == "" {
		g.muEdgeAdj.RLock()
		defer g.muEdgeAdj.RUnlock()
		out := make([]*Edge, 0, len(g.edges))
		for id := range g.edges {
			e := g.edges[id]
			out = append(out, &e)
		}
		return out
	}
	return g.collectEdgesByKey(keyByLabel(g.prefixes.ExpandRaw(label)))
}

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}

// GetOutgoingEdges returns vid's outgoing edges, optionally filtered by label.
func (g *Graph) GetOutgoingEdges(vid, label string) []*Edge {
	vid = g.prefixes.ExpandRaw(vid)
	return g.collectEdgesByKey(keyOutFor(vid, g.expandLabel(label)))
}

// GetIncomingEdges returns vid's incoming edges, optionally filtered by label.
func (g *Graph) GetIncomingEdges(vid, label string) []*Edge {
	vid = g.prefixes.ExpandRaw(vid)
	return g.collectEdgesByKey(keyInFor(vid, g.expandLabel(label)))
}

func (g *Graph) expandLabel(label string) string {
	if label == "" {
		return ""
	}
	return g.prefixes.ExpandRaw(label)
}

func (g *Graph) collectEdgesByKey(key string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := g.index.members(key)
	out := make([]*Edge, 0, len(ids))
	for _, id := range ids {
		e := g.edges[id]
		out = append(out, &e)
	}
	return out
}

// collectEdges is the Vertex-facing helper used by Outgoing/Incoming.
func (g *Graph) collectEdges(key string, _ bool) []*Edge {
	return g.collectEdgesByKey(key)
}

// GetOutgoingVertices returns the distinct source vertices of every edge
// labeled label — every vertex that has an outgoing edge so labeled — in
// first-seen order.
func (g *Graph) GetOutgoingVertices(label string) []*Vertex {
	return g.distinctTargets(g.GetEdges(label), false)
}

// GetIncomingVertices returns the distinct target vertices of every edge
// labeled label, in first-seen order.
func (g *Graph) GetIncomingVertices(label string) []*Vertex {
	return g.distinctTargets(g.GetEdges(label), true)
}

func (g *Graph) distinctTargets(edges []*Edge, outgoing bool) []*Vertex {
	seen := make(map[string]struct{}, len(edges))
	out := make([]*Vertex, 0, len(edges))
	for _, e := range edges {
		id := e.To
		if !outgoing {
			id = e.From
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if v, err := g.GetVertex(id); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func (g *Graph) collectOutgoingVertices(vid, label string) []*Vertex {
	edges := g.GetOutgoingEdges(vid, label)
	return g.distinctTargets(edges, true)
}

func (g *Graph) collectIncomingVertices(vid, label string) []*Vertex {
	edges := g.GetIncomingEdges(vid, label)
	return g.distinctTargets(edges, false)
}

// --- Vertex-facing edge helpers ---------------------------------------------

func (g *Graph) setDirectedEdge(vid, label, otherID string, outgoing, createIfMissing bool) (*Edge, error) {
	otherExpanded := g.prefixes.ExpandRaw(otherID)
	if !g.HasVertex(otherExpanded) {
		if !createIfMissing {
			return nil, ErrVertexNotFound
		}
		if _, err := g.getOrCreateVertex(otherExpanded); err != nil {
			return nil, err
		}
	}
	if outgoing {
		return g.CreateEdge(label, vid, otherExpanded)
	}
	return g.CreateEdge(label, otherExpanded, vid)
}

func (g *Graph) hasDirected(vid, label, otherID string, outgoing bool) bool {
	if otherID != "" && label != "" {
		otherExpanded := g.prefixes.ExpandRaw(otherID)
		if outgoing {
			return g.HasEdge(label, vid, otherExpanded)
		}
		return g.HasEdge(label, otherExpanded, vid)
	}

	var edges []*Edge
	if outgoing {
		edges = g.GetOutgoingEdges(vid, label)
	} else {
		edges = g.GetIncomingEdges(vid, label)
	}
	if otherID == "" {
		return len(edges) > 0
	}
	otherExpanded := g.prefixes.ExpandRaw(otherID)
	for _, e := range edges {
		if outgoing && e.To == otherExpanded {
			return true
		}
		if !outgoing && e.From == otherExpanded {
			return true
		}
	}
	return false
}

// HasOutgoing reports whether vid has an outgoing label edge to otherID.
func (g *Graph) HasOutgoing(vid, label, otherID string) bool {
	return g.hasDirected(vid, label, otherID, true)
}

func (g *Graph) removeEdgesMatching(vid, label string, filter EdgeFilter, outgoing bool) error {
	var edges []*Edge
	if outgoing {
		edges = g.GetOutgoingEdges(vid, label)
	} else {
		edges = g.GetIncomingEdges(vid, label)
	}
	for _, e := range edges {
		other := e.To
		if !outgoing {
			other = e.From
		}
		if !filter.accepts(g, other) {
			continue
		}
		if err := g.RemoveEdge(*e); err != nil && err != ErrEdgeNotFound {
			return err
		}
	}
	return nil
}
