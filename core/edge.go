package core

// TypeLabel is the reserved pseudo-IRI used as the edge label for class
// membership (the JSON-LD @type relation).
const TypeLabel = "@type"

// Edge is an immutable (label, from, to) triple. Label, From, and To are
// all stored and returned expanded; Graph.CompactIRI converts any of them
// to compact form.
type Edge struct {
	Label string
	From  string
	To    string
}

// identity returns the canonical dedup key and index-set member value for
// e: "label_from->to".
func (e Edge) identity() string {
	return edgeIdentity(e.Label, e.From, e.To)
}

func edgeIdentity(label, from, to string) string {
	return label + "_" + from + "->" + to
}
