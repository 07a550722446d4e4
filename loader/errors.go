// Package loader turns expanded JSON-LD entities into vertices, edges, and
// attributes on a *core.Graph, applying the identity, uniqueness, and
// type-conflict policies an ingest caller configures.
package loader

import "errors"

var (
	// ErrInvalidIRI is returned when identityValidator rejects an @id.
	ErrInvalidIRI = errors.New("loader: invalid IRI")

	// ErrDuplicateEntityDefinition is returned by the unique load option
	// when the same @id is defined more than once in a single Load call.
	ErrDuplicateEntityDefinition = errors.New("loader: duplicate entity definition")

	// ErrInvalidEntity is returned for a malformed entity shape (e.g. a
	// non-object element in an @graph array).
	ErrInvalidEntity = errors.New("loader: invalid entity")
)
