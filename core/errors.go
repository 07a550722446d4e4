package core

import "errors"

// Sentinel errors for core graph operations. Every core-raised error is one
// of these (or wraps one via fmt.Errorf("...: %w", ...) at a propagation
// boundary), so callers can always use errors.Is.
var (
	// ErrInvalidArgument indicates a null/empty/ill-formed parameter was
	// passed to an operation that validates preconditions up front.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates an attempt to create or rename onto an
	// already-occupied vertex IRI.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrDuplicateEdge indicates the triple (label, from, to) already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrCyclicEdge indicates an edge was attempted from a vertex to itself.
	ErrCyclicEdge = errors.New("core: self-loop edge not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)
