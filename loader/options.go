package loader

import "log/slog"

// LoadOptions configures a single Load call's identity, merge, and
// type-conflict policies.
type LoadOptions struct {
	// Logger receives debug-level events for blank-node creation and type
	// conflict resolution. Defaults to slog.Default() when nil.
	Logger *slog.Logger

	// Merge, when true, makes loadPredicate use Set (replace) semantics for
	// literal values instead of the default Append.
	Merge bool

	// Unique, when true, rejects a second entity definition for an @id
	// already seen in this call once that vertex carries any type,
	// attribute, or outgoing edge.
	Unique bool

	// IdentityValidator, if set, is applied to every non-blank @id before
	// it is resolved; a returned error aborts the load with ErrInvalidIRI.
	IdentityValidator func(id string) error

	// IdentityTranslator, if set, rewrites every non-blank @id and @type
	// value before it is applied to the graph.
	IdentityTranslator func(id string) string

	// TypeConflictResolver is invoked when a vertex already carries types
	// and the entity supplies more. A non-nil result replaces the
	// vertex's types wholesale; a nil result keeps the existing types.
	TypeConflictResolver func(existing, incoming []string) []string
}

// Option configures a LoadOptions value.
type Option func(*LoadOptions)

// WithMerge selects Set (replace) semantics for literal attribute values.
func WithMerge() Option {
	return func(o *LoadOptions) { o.Merge = true }
}

// WithUnique rejects duplicate entity definitions within one Load call.
func WithUnique() Option {
	return func(o *LoadOptions) { o.Unique = true }
}

// WithIdentityValidator installs a non-blank @id validator.
func WithIdentityValidator(f func(id string) error) Option {
	return func(o *LoadOptions) { o.IdentityValidator = f }
}

// WithIdentityTranslator installs an @id/@type rewriter.
func WithIdentityTranslator(f func(id string) string) Option {
	return func(o *LoadOptions) { o.IdentityTranslator = f }
}

// WithTypeConflictResolver installs a resolver for vertices that already
// carry types when an entity supplies more.
func WithTypeConflictResolver(f func(existing, incoming []string) []string) Option {
	return func(o *LoadOptions) { o.TypeConflictResolver = f }
}

// WithLogger overrides the default slog.Default() logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *LoadOptions) { o.Logger = l }
}
