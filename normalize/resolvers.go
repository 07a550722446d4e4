package normalize

import (
	"log/slog"

	"github.com/katalvlaran/ldgraph/core"
)

// Resolvers supplies the three normalization policies and the unique flag
// that governs what happens when a resolved blank IRI collides.
type Resolvers struct {
	// Logger receives debug-level events for blank-types assignment,
	// merge-on-collision, and type conflict resolution. Defaults to
	// slog.Default() when nil.
	Logger *slog.Logger

	// BlankTypeResolver assigns types to a still-typeless vertex. A nil or
	// empty result leaves the vertex in the typeless register.
	BlankTypeResolver func(vertex *core.Vertex) []string

	// BlankIRIResolver proposes a stable IRI for a blank vertex. An empty
	// result, or one equal to the vertex's current IRI, leaves it blank.
	BlankIRIResolver func(vertex *core.Vertex) string

	// TypeConflictResolver settles a type conflict when merging a blank
	// vertex into an existing one that both carry types. A nil result
	// keeps the existing (merge-target) vertex's types unchanged.
	TypeConflictResolver func(existing, incoming []string) []string

	// Unique makes a resolved-IRI collision fail with
	// ErrDuplicateEntityDefinition instead of merging.
	Unique bool
}
