package ldgraph

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/ldgraph/core"
	"github.com/katalvlaran/ldgraph/ldcontext"
	"github.com/piprate/json-gold/ld"
)

// ReferencePredicate decides, per outgoing edge, whether an export option
// applies to the edge labeled label pointing at target.
type ReferencePredicate func(label string, target *core.Vertex) bool

// AlwaysReference is a ReferencePredicate that matches every edge.
func AlwaysReference(string, *core.Vertex) bool { return true }

// ExportOptions controls per-vertex expansion in Exporter.ToExpanded and
// Exporter.ToJSON, realizing the recognized expansion options from the
// design (anonymous references/types, locale compaction, reference
// exclusion, attribute exclusion, identity translation, and a post-hoc
// transform hook).
type ExportOptions struct {
	// AnonymousReferences drops @id from an embedded or referenced target
	// matching the predicate.
	AnonymousReferences ReferencePredicate

	// AnonymousTypes omits @type from a vertex matching the predicate.
	AnonymousTypes func(v *core.Vertex) bool

	// CompactLocale, when set, emits a bare literal instead of a value
	// object for any attribute with exactly one value in this language.
	CompactLocale string

	// CompactReferences selects which outgoing edges are emitted as a bare
	// {"@id": ...} reference rather than a fully embedded object. A nil
	// predicate compacts every reference (the default).
	CompactReferences ReferencePredicate

	// ExcludeReferences skips outgoing edges matching the predicate entirely.
	ExcludeReferences ReferencePredicate

	// ExcludeAttributes skips attributes whose predicate matches.
	ExcludeAttributes func(predicate string) bool

	// NoReferences skips every outgoing edge, regardless of label.
	NoReferences bool

	// IdentityTranslator rewrites every @id and @type value on emit.
	IdentityTranslator func(id string) string

	// Transform mutates the per-vertex object just before it is returned,
	// after every other option has been applied.
	Transform func(vertex *core.Vertex, obj map[string]any)

	// Frame, when set, selects the frame export path (ToJSON calls the
	// external processor's Frame instead of Compact) with this as the
	// frame document (merged with the requested @context).
	Frame map[string]any

	// StripContext removes "@context" from ToJSON's result before returning it.
	StripContext bool
}

// Exporter drives the export side of the pipeline: select root vertices
// (those with no incoming edges), expand each to a plain JSON-LD node,
// then frame or compact the result through an external processor.
type Exporter struct {
	graph     *core.Graph
	contexts  *ldcontext.Store
	processor *ld.JsonLdProcessor
}

// NewExporter returns an Exporter over g, using contexts for @context
// resolution during ToJSON.
func NewExporter(g *core.Graph, contexts *ldcontext.Store) *Exporter {
	return &Exporter{graph: g, contexts: contexts, processor: ld.NewJsonLdProcessor()}
}

// ToExpanded returns the whole graph as a JSON-LD expanded document:
// {"@graph": [per-vertex object, ...]}, with every outgoing edge emitted
// as a bare {"@id": ...} reference (never embedded).
func (e *Exporter) ToExpanded() map[string]any {
	vertices := e.graph.GetVertices()
	sort.Slice(vertices, func(i, j int) bool { return vertices[i].IRI() < vertices[j].IRI() })

	nodes := make([]any, 0, len(vertices))
	for _, v := range vertices {
		nodes = append(nodes, e.expandVertex(v, ExportOptions{CompactReferences: AlwaysReference}))
	}
	return map[string]any{"@graph": nodes}
}

// ToJSON selects every root vertex (no incoming edges), expands each per
// opts, then frames (if opts.Frame is set) or compacts the result against
// contexts through the external JSON-LD processor.
func (e *Exporter) ToJSON(ctx context.Context, contexts []any, opts ExportOptions) (any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var roots []*core.Vertex
	for _, v := range e.graph.GetVertices() {
		if len(v.Incoming("")) == 0 {
			roots = append(roots, v)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].IRI() < roots[j].IRI() })

	nodes := make([]interface{}, 0, len(roots))
	for _, v := range roots {
		nodes = append(nodes, e.expandVertex(v, opts))
	}

	ldOpts := ld.NewJsonLdOptions("")
	ldOpts.DocumentLoader = e.contexts.DocumentLoader()

	var result any
	var err error
	if opts.Frame != nil {
		frame := make(map[string]interface{}, len(opts.Frame)+1)
		for k, v := range opts.Frame {
			frame[k] = v
		}
		frame["@context"] = contexts
		result, err = e.processor.Frame(nodes, frame, ldOpts)
	} else {
		var ctxValue any = contexts
		if len(contexts) == 1 {
			ctxValue = contexts[0]
		}
		result, err = e.processor.Compact(nodes, ctxValue, ldOpts)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentParse, err)
	}

	if opts.StripContext {
		if m, ok := result.(map[string]interface{}); ok {
			delete(m, "@context")
		}
	}
	return result, nil
}

func (e *Exporter) expandVertex(v *core.Vertex, opts ExportOptions) map[string]any {
	obj := make(map[string]any)

	id := v.IRI()
	if opts.IdentityTranslator != nil {
		id = opts.IdentityTranslator(id)
	}
	obj["@id"] = id

	if types := v.Types(); len(types) > 0 && !(opts.AnonymousTypes != nil && opts.AnonymousTypes(v)) {
		ids := make([]string, 0, len(types))
		for _, t := range types {
			tid := t.IRI()
			if opts.IdentityTranslator != nil {
				tid = opts.IdentityTranslator(tid)
			}
			ids = append(ids, tid)
		}
		sort.Strings(ids)
		obj["@type"] = ids
	}

	for _, pred := range sortedPredicates(v.Attributes()) {
		if opts.ExcludeAttributes != nil && opts.ExcludeAttributes(pred) {
			continue
		}
		obj[pred] = e.attributeValue(v.Attributes().GetAll(pred), opts)
	}

	if !opts.NoReferences {
		for label, edges := range outgoingByLabel(v) {
			if label == core.TypeLabel {
				continue
			}
			values := e.referenceValues(label, edges, opts)
			if len(values) > 0 {
				obj[label] = values
			}
		}
	}

	if opts.Transform != nil {
		opts.Transform(v, obj)
	}
	return obj
}

func (e *Exporter) referenceValues(label string, edges []*core.Edge, opts ExportOptions) []any {
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	values := make([]any, 0, len(edges))
	for _, edge := range edges {
		target, err := e.graph.GetVertex(edge.To)
		if err != nil {
			continue
		}
		if opts.ExcludeReferences != nil && opts.ExcludeReferences(label, target) {
			continue
		}

		compact := opts.CompactReferences == nil || opts.CompactReferences(label, target)
		if !compact {
			embedded := e.expandVertex(target, opts)
			if opts.AnonymousReferences != nil && opts.AnonymousReferences(label, target) {
				delete(embedded, "@id")
			}
			values = append(values, embedded)
			continue
		}

		ref := make(map[string]any)
		if !(opts.AnonymousReferences != nil && opts.AnonymousReferences(label, target)) {
			rid := target.IRI()
			if opts.IdentityTranslator != nil {
				rid = opts.IdentityTranslator(rid)
			}
			ref["@id"] = rid
		}
		values = append(values, ref)
	}
	return values
}

func (e *Exporter) attributeValue(values []core.AttributeValue, opts ExportOptions) any {
	if opts.CompactLocale != "" {
		matches := 0
		var only core.AttributeValue
		for _, av := range values {
			if av.Language == opts.CompactLocale {
				matches++
				only = av
			}
		}
		if matches == 1 {
			return only.Value
		}
	}

	out := make([]any, 0, len(values))
	for _, av := range values {
		vo := map[string]any{"@value": av.Value}
		if av.Language != "" {
			vo["@language"] = av.Language
		}
		if av.Type != "" {
			vo["@type"] = av.Type
		}
		out = append(out, vo)
	}
	return out
}

func sortedPredicates(bag *core.AttributeBag) []string {
	preds := bag.Predicates()
	sort.Strings(preds)
	return preds
}

func outgoingByLabel(v *core.Vertex) map[string][]*core.Edge {
	out := make(map[string][]*core.Edge)
	for _, e := range v.Outgoing("") {
		out[e.Label] = append(out[e.Label], e)
	}
	return out
}
