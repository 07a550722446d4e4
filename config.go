package ldgraph

import (
	"log/slog"

	"github.com/katalvlaran/ldgraph/core"
	"github.com/katalvlaran/ldgraph/iri"
	"github.com/katalvlaran/ldgraph/ldcontext"
	"github.com/katalvlaran/ldgraph/normalize"
)

// parserConfig holds the construction-time settings for NewParser.
type parserConfig struct {
	graph        *core.Graph
	prefixes     *iri.Registry
	remoteLoader ldcontext.RemoteLoader
}

// ParserOption configures a Parser at construction time.
type ParserOption func(*parserConfig)

// WithGraph supplies a pre-populated graph instead of a fresh one.
func WithGraph(g *core.Graph) ParserOption {
	return func(c *parserConfig) { c.graph = g }
}

// WithPrefixRegistry supplies a pre-populated IRI registry.
func WithPrefixRegistry(r *iri.Registry) ParserOption {
	return func(c *parserConfig) { c.prefixes = r }
}

// WithRemoteContexts enables remote @context resolution via loader for
// URLs not registered on the Parser's context store.
func WithRemoteContexts(loader ldcontext.RemoteLoader) ParserOption {
	return func(c *parserConfig) { c.remoteLoader = loader }
}

// ParseConfig holds the per-call settings for Parser.Parse.
type ParseConfig struct {
	Base               string
	Merge              bool
	Unique             bool
	Normalize          bool
	IdentityValidator  func(id string) error
	IdentityTranslator func(id string) string
	Resolvers          normalize.Resolvers
	Logger             *slog.Logger
}

// ParseOption configures a single Parse call.
type ParseOption func(*ParseConfig)

// WithBase sets the document base IRI used during expansion.
func WithBase(base string) ParseOption {
	return func(c *ParseConfig) { c.Base = base }
}

// WithMerge makes loaded literal attributes use set (replace) semantics
// instead of the default append.
func WithMerge() ParseOption {
	return func(c *ParseConfig) { c.Merge = true }
}

// WithUnique rejects duplicate entity definitions within the document.
func WithUnique() ParseOption {
	return func(c *ParseConfig) { c.Unique = true }
}

// WithIdentityValidator installs a non-blank @id validator for the load step.
func WithIdentityValidator(f func(id string) error) ParseOption {
	return func(c *ParseConfig) { c.IdentityValidator = f }
}

// WithIdentityTranslator installs an @id/@type rewriter for the load step.
func WithIdentityTranslator(f func(id string) string) ParseOption {
	return func(c *ParseConfig) { c.IdentityTranslator = f }
}

// WithNormalize runs the blank-node normalizer after loading, using resolvers.
func WithNormalize(resolvers normalize.Resolvers) ParseOption {
	return func(c *ParseConfig) { c.Normalize = true; c.Resolvers = resolvers }
}

// WithLogger overrides the default slog.Default() logger used by the
// loader and normalizer for this Parse call.
func WithLogger(l *slog.Logger) ParseOption {
	return func(c *ParseConfig) { c.Logger = l }
}
