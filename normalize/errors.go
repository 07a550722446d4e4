// Package normalize implements the post-load blank-node normalization
// pipeline: resolving typeless vertices to real types, then resolving
// blank IRIs to stable ones, renaming or merging as each resolution
// demands.
package normalize

import "errors"

var (
	// ErrDuplicateEntityDefinition is returned when the unique option is
	// set and a blank vertex's resolved IRI already names a live vertex.
	ErrDuplicateEntityDefinition = errors.New("normalize: duplicate entity definition")

	// ErrBlankIDNormalization is returned when merging two typed
	// vertices and no TypeConflictResolver is configured to settle it.
	ErrBlankIDNormalization = errors.New("normalize: unresolved type conflict on blank-IRI merge")
)
