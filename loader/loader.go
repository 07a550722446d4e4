package loader

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/katalvlaran/ldgraph/core"
)

// loadState carries the per-call bookkeeping (seen @id set) that the
// unique policy needs across the whole entity list.
type loadState struct {
	graph *core.Graph
	opts  LoadOptions
	seen  map[string]bool
}

// Load ingests entities (already JSON-LD-expanded, e.g. via Entities) into
// g, applying opts' identity, uniqueness, and type-conflict policies. Each
// entity drives the six-step algorithm: determine id, validate, translate,
// check uniqueness, resolve-or-create the vertex, then load its predicates.
func Load(g *core.Graph, entities []map[string]any, opts ...Option) error {
	cfg := LoadOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	st := &loadState{graph: g, opts: cfg, seen: make(map[string]bool)}

	for _, entity := range entities {
		if _, err := st.loadEntity(entity); err != nil {
			return err
		}
	}
	return nil
}

func newBlankID() string {
	return core.BlankPrefix + "-" + uuid.NewString()[:8]
}

func (st *loadState) loadEntity(entity map[string]any) (*core.Vertex, error) {
	id, isBlank := determineID(entity)
	if isBlank {
		st.opts.Logger.Debug("loader: assigned blank node id", "id", id)
	}

	if !isBlank {
		if st.opts.IdentityValidator != nil {
			if err := st.opts.IdentityValidator(id); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidIRI, id, err)
			}
		}
		if st.opts.IdentityTranslator != nil {
			id = st.opts.IdentityTranslator(id)
		}
	}

	types := extractTypes(entity)
	if st.opts.IdentityTranslator != nil {
		for i, t := range types {
			types[i] = st.opts.IdentityTranslator(t)
		}
	}

	hasMoreThanID := false
	for k := range entity {
		if k != "@id" {
			hasMoreThanID = true
			break
		}
	}

	if st.opts.Unique && st.seen[id] && hasMoreThanID {
		if existing, err := st.graph.GetVertex(id); err == nil && isOccupied(existing) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntityDefinition, id)
		}
	}
	st.seen[id] = true

	vertex, err := st.graph.CreateVertex(id)
	if err != nil {
		return nil, err
	}

	if err := st.applyTypes(vertex, types); err != nil {
		return nil, err
	}

	for predicate, raw := range entity {
		if predicate == "@id" || predicate == "@type" {
			continue
		}
		values, ok := raw.([]interface{})
		if !ok {
			values = []interface{}{raw}
		}
		if err := st.loadPredicate(predicate, values, vertex); err != nil {
			return nil, err
		}
	}

	return vertex, nil
}

// applyTypes implements step 5/6 of the entity algorithm: resolve a type
// conflict if the vertex already has types and more are supplied, apply
// directly otherwise, and keep the typeless register in sync either way.
func (st *loadState) applyTypes(vertex *core.Vertex, types []string) error {
	existing := vertex.Types()

	switch {
	case len(existing) > 0 && len(types) > 0:
		if st.opts.TypeConflictResolver == nil {
			break // keep existing types, no resolver configured
		}
		existingIDs := make([]string, 0, len(existing))
		for _, v := range existing {
			existingIDs = append(existingIDs, v.IRI())
		}
		resolved := st.opts.TypeConflictResolver(existingIDs, types)
		if resolved == nil {
			break // resolver says keep existing
		}
		st.opts.Logger.Debug("loader: resolved type conflict", "vertex", vertex.IRI(), "existing", existingIDs, "incoming", types, "resolved", resolved)
		for _, v := range existing {
			if err := vertex.RemoveType(v.IRI()); err != nil {
				return err
			}
		}
		if err := vertex.SetType(resolved...); err != nil {
			return err
		}
	case len(types) > 0:
		if err := vertex.SetType(types...); err != nil {
			return err
		}
	}

	if len(vertex.Outgoing(core.TypeLabel)) > 0 {
		st.graph.UnmarkTypeless(vertex.IRI())
	}
	return nil
}

// loadPredicate implements the value-shape dispatch from the design: list
// unwrapping, literal recording (append or set), and nested-entity edges.
func (st *loadState) loadPredicate(predicate string, values []interface{}, vertex *core.Vertex) error {
	for _, raw := range values {
		obj, ok := raw.(map[string]interface{})
		if !ok {
			return fmt.Errorf("%w: predicate %q carries a non-object value", ErrInvalidEntity, predicate)
		}

		if list, ok := obj["@list"]; ok {
			items, ok := list.([]interface{})
			if !ok {
				return fmt.Errorf("%w: predicate %q has a non-array @list", ErrInvalidEntity, predicate)
			}
			if err := st.loadPredicate(predicate, items, vertex); err != nil {
				return err
			}
			continue
		}

		if val, hasValue := obj["@value"]; hasValue && val != nil {
			language, _ := obj["@language"].(string)
			typ, _ := obj["@type"].(string)
			asJSON := typ == core.JSONType

			var err error
			if st.opts.Merge {
				err = vertex.Attributes().Set(predicate, val, language, asJSON)
			} else {
				err = vertex.Attributes().Append(predicate, val, language, asJSON)
			}
			if err != nil {
				return err
			}
			continue
		}

		nested, err := st.loadEntity(obj)
		if err != nil {
			return err
		}
		if !vertex.HasOutgoing(predicate, nested.IRI()) {
			if _, err := vertex.SetOutgoing(predicate, nested.IRI(), true); err != nil {
				return err
			}
		}
	}
	return nil
}

func determineID(entity map[string]any) (id string, isBlank bool) {
	if raw, ok := entity["@id"]; ok {
		if s, ok := raw.(string); ok && s != "" {
			return s, false
		}
	}
	return newBlankID(), true
}

func extractTypes(entity map[string]any) []string {
	raw, ok := entity["@type"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case string:
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	default:
		return nil
	}
}

func isOccupied(v *core.Vertex) bool {
	if len(v.Types()) > 0 || v.Attributes().Len() > 0 {
		return true
	}
	return len(v.Outgoing("")) > 0
}
