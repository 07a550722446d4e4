package core

// RenameVertex rewires every edge incident to target onto a freshly
// created vertex at newID and removes target. It never mutates an edge in
// place: it rewires by creating fresh edges at the new IRI, then removing
// the old vertex (which cascades its now-superseded edges), preserving
// edge-uniqueness and index invariants throughout.
func (g *Graph) RenameVertex(target *Vertex, newID string) (*Vertex, error) {
	if target == nil || newID == "" {
		return nil, ErrInvalidArgument
	}
	expanded := g.prefixes.ExpandRaw(newID)
	if expanded == target.iri {
		return target, nil
	}
	if g.HasVertex(expanded) {
		return nil, ErrDuplicateVertex
	}

	outgoing := g.GetOutgoingEdges(target.iri, "")
	incoming := g.GetIncomingEdges(target.iri, "")

	fresh, err := g.getOrCreateVertex(expanded)
	if err != nil {
		return nil, err
	}

	for _, predicate := range target.attrs.Predicates() {
		for _, av := range target.attrs.GetAll(predicate) {
			if err := fresh.attrs.Append(predicate, av.Value, av.Language, av.Type == JSONType); err != nil {
				return nil, err
			}
		}
	}

	for _, e := range outgoing {
		if _, err := g.CreateEdge(e.Label, expanded, e.To); err != nil {
			return nil, err
		}
	}
	for _, e := range incoming {
		if _, err := g.CreateEdge(e.Label, e.From, expanded); err != nil {
			return nil, err
		}
	}

	if err := g.RemoveVertex(target.iri); err != nil {
		return nil, err
	}

	if len(fresh.Outgoing(TypeLabel)) > 0 {
		g.UnmarkTypeless(expanded)
	}

	return fresh, nil
}
