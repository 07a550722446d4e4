package normalize

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/ldgraph/core"
)

// Normalize runs the two-pass post-load pipeline against g: first
// resolving typeless vertices via BlankTypeResolver, then resolving blank
// IRIs via BlankIRIResolver (parents before children, merging or renaming
// as each resolution demands).
func Normalize(g *core.Graph, resolvers Resolvers) error {
	if resolvers.Logger == nil {
		resolvers.Logger = slog.Default()
	}
	if err := blankTypesPass(g, resolvers); err != nil {
		return err
	}
	return blankIRIsPass(g, resolvers)
}

// blankTypesPass assigns types to every still-typeless vertex it can via
// BlankTypeResolver, dropping settled vertices from the typeless register.
func blankTypesPass(g *core.Graph, resolvers Resolvers) error {
	for _, id := range g.TypelessVertices() {
		v, err := g.GetVertex(id)
		if err != nil {
			continue // removed by an earlier resolution in this pass
		}
		if len(v.Types()) > 0 {
			g.UnmarkTypeless(id)
			continue
		}
		if resolvers.BlankTypeResolver == nil {
			continue
		}
		types := resolvers.BlankTypeResolver(v)
		if len(types) == 0 {
			continue
		}
		if err := v.SetType(types...); err != nil {
			return err
		}
		if len(v.Types()) > 0 {
			resolvers.Logger.Debug("normalize: assigned type to typeless vertex", "vertex", id, "types", types)
			g.UnmarkTypeless(id)
		}
	}
	return nil
}

// blankIRIsPass walks every blank vertex depth-first, always resolving a
// vertex's blank ancestors (vertices reachable via an incoming edge that
// are themselves still blank) before the vertex itself.
func blankIRIsPass(g *core.Graph, resolvers Resolvers) error {
	visited := make(map[string]bool)
	visiting := make(map[string]bool)

	var visit func(id string) error
	visit = func(id string) error {
		if visited[id] || visiting[id] {
			return nil
		}
		visiting[id] = true
		defer func() { visiting[id] = false }()

		v, err := g.GetVertex(id)
		if err != nil {
			visited[id] = true
			return nil // merged away as someone else's ancestor already
		}
		for _, e := range v.Incoming("") {
			if !isBlankID(e.From) {
				continue
			}
			if err := visit(e.From); err != nil {
				return err
			}
		}

		visited[id] = true
		return resolveBlankVertex(g, resolvers, id)
	}

	for _, id := range g.BlankNodes() {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

func isBlankID(id string) bool {
	return strings.HasPrefix(id, core.BlankPrefix)
}

// resolveBlankVertex applies BlankIRIResolver to the blank vertex named id
// and either leaves it, renames it, merges it into its resolved target, or
// fails, per the design.
func resolveBlankVertex(g *core.Graph, resolvers Resolvers, id string) error {
	v, err := g.GetVertex(id)
	if err != nil {
		return nil
	}
	if resolvers.BlankIRIResolver == nil {
		return nil
	}
	newIRI := resolvers.BlankIRIResolver(v)
	if newIRI == "" || newIRI == v.IRI() {
		return nil
	}

	if !g.HasVertex(newIRI) {
		_, err := g.RenameVertex(v, newIRI)
		return err
	}

	if resolvers.Unique {
		return fmt.Errorf("%w: %s", ErrDuplicateEntityDefinition, newIRI)
	}
	resolvers.Logger.Debug("normalize: merging blank node on collision", "blank", v.IRI(), "target", newIRI)
	return mergeBlankInto(g, resolvers, v, newIRI)
}

// mergeBlankInto folds blank into the existing vertex named targetID:
// type conflict resolution, attribute union, and incoming/outgoing edge
// rewiring (skipping @type), then removes blank.
func mergeBlankInto(g *core.Graph, resolvers Resolvers, blank *core.Vertex, targetID string) error {
	target, err := g.GetVertex(targetID)
	if err != nil {
		return err
	}

	if err := mergeTypes(resolvers, blank, target); err != nil {
		return err
	}

	for _, pred := range blank.Attributes().Predicates() {
		for _, av := range blank.Attributes().GetAll(pred) {
			if err := target.Attributes().Append(pred, av.Value, av.Language, av.Type == core.JSONType); err != nil {
				return err
			}
		}
	}

	for _, e := range blank.Incoming("") {
		if g.HasEdge(e.Label, e.From, target.IRI()) {
			continue
		}
		if _, err := g.CreateEdge(e.Label, e.From, target.IRI()); err != nil {
			return err
		}
	}
	for _, e := range blank.Outgoing("") {
		if e.Label == core.TypeLabel {
			continue
		}
		if g.HasEdge(e.Label, target.IRI(), e.To) {
			continue
		}
		if _, err := g.CreateEdge(e.Label, target.IRI(), e.To); err != nil {
			return err
		}
	}

	return g.RemoveVertex(blank.IRI())
}

func mergeTypes(resolvers Resolvers, blank, target *core.Vertex) error {
	blankTypes := typeIRIs(blank.Types())
	targetTypes := typeIRIs(target.Types())

	if len(blankTypes) == 0 || len(targetTypes) == 0 {
		for _, t := range blankTypes {
			if target.IsType(t) {
				continue
			}
			if err := target.SetType(t); err != nil {
				return err
			}
		}
		return nil
	}

	if resolvers.TypeConflictResolver == nil {
		return ErrBlankIDNormalization
	}
	resolved := resolvers.TypeConflictResolver(targetTypes, blankTypes)
	if resolved == nil {
		return nil
	}
	resolvers.Logger.Debug("normalize: resolved type conflict on merge", "target", target.IRI(), "existing", targetTypes, "incoming", blankTypes, "resolved", resolved)
	for _, t := range target.Types() {
		if err := target.RemoveType(t.IRI()); err != nil {
			return err
		}
	}
	return target.SetType(resolved...)
}

func typeIRIs(vs []*core.Vertex) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.IRI())
	}
	return out
}
