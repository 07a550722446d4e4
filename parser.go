package ldgraph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ldgraph/core"
	"github.com/katalvlaran/ldgraph/ldcontext"
	"github.com/katalvlaran/ldgraph/loader"
	"github.com/katalvlaran/ldgraph/normalize"
	"github.com/piprate/json-gold/ld"
)

// Parser drives the ingest side of the pipeline: expand a JSON-LD document
// through an external processor, load the result into a core.Graph, and
// optionally normalize blank nodes.
type Parser struct {
	graph     *core.Graph
	contexts  *ldcontext.Store
	processor *ld.JsonLdProcessor
}

// NewParser returns a Parser over a fresh (or supplied, via WithGraph) graph.
func NewParser(opts ...ParserOption) *Parser {
	cfg := parserConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var contextOpts []ldcontext.Option
	if cfg.remoteLoader != nil {
		contextOpts = append(contextOpts, ldcontext.WithRemoteLoader(cfg.remoteLoader))
	}
	contexts := ldcontext.NewStore(contextOpts...)

	g := cfg.graph
	if g == nil {
		var graphOpts []core.Option
		if cfg.prefixes != nil {
			graphOpts = append(graphOpts, core.WithPrefixRegistry(cfg.prefixes))
		}
		graphOpts = append(graphOpts, core.WithContextStore(contexts))
		g = core.NewGraph(graphOpts...)
	}

	return &Parser{graph: g, contexts: contexts, processor: ld.NewJsonLdProcessor()}
}

// Graph exposes the Parser's underlying store.
func (p *Parser) Graph() *core.Graph { return p.graph }

// Contexts exposes the Parser's context store, e.g. to pre-register
// local @context documents before Parse.
func (p *Parser) Contexts() *ldcontext.Store { return p.contexts }

// Exporter returns an Exporter sharing this Parser's graph and context store.
func (p *Parser) Exporter() *Exporter {
	return &Exporter{graph: p.graph, contexts: p.contexts, processor: p.processor}
}

// Parse expands doc via the external JSON-LD processor, loads the result
// into the Parser's graph, and — if WithNormalize was supplied — runs the
// blank-node normalizer. doc may be a JSON-LD document, an IRI string
// resolved through the context store's document loader, or the output of
// a prior Expand call.
func (p *Parser) Parse(ctx context.Context, doc any, opts ...ParseOption) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	cfg := ParseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	ldOpts := ld.NewJsonLdOptions(cfg.Base)
	ldOpts.DocumentLoader = p.contexts.DocumentLoader()

	expanded, err := p.processor.Expand(doc, ldOpts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDocumentParse, err)
	}

	entities, err := loader.Entities(expanded)
	if err != nil {
		return err
	}

	var loaderOpts []loader.Option
	if cfg.Merge {
		loaderOpts = append(loaderOpts, loader.WithMerge())
	}
	if cfg.Unique {
		loaderOpts = append(loaderOpts, loader.WithUnique())
	}
	if cfg.IdentityValidator != nil {
		loaderOpts = append(loaderOpts, loader.WithIdentityValidator(cfg.IdentityValidator))
	}
	if cfg.IdentityTranslator != nil {
		loaderOpts = append(loaderOpts, loader.WithIdentityTranslator(cfg.IdentityTranslator))
	}
	if cfg.Logger != nil {
		loaderOpts = append(loaderOpts, loader.WithLogger(cfg.Logger))
	}

	if err := loader.Load(p.graph, entities, loaderOpts...); err != nil {
		return err
	}

	if cfg.Normalize {
		resolvers := cfg.Resolvers
		if cfg.Logger != nil {
			resolvers.Logger = cfg.Logger
		}
		return normalize.Normalize(p.graph, resolvers)
	}
	return nil
}
