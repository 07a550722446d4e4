// Package ldgraph is an in-memory labeled directed graph engine for
// JSON-LD documents: load expanded JSON-LD into a vertex/edge/attribute
// store, normalize blank nodes, and export back out through framing or
// compaction.
//
// Under the hood, the work is split across subpackages:
//
//	core/       — Graph, Vertex, Edge, AttributeBag: the thread-safe store itself
//	iri/        — prefix registry for IRI compaction/expansion
//	ldcontext/  — named JSON-LD context documents + remote-context loading
//	loader/     — turns expanded JSON-LD entities into vertices/edges/attributes
//	normalize/  — blank-type and blank-IRI resolution passes
//
// This root package wires them together: Parser drives expand → load →
// (optional) normalize against an external JSON-LD processor
// (github.com/piprate/json-gold/ld), and Exporter drives the reverse:
// root selection, per-vertex expansion, then framing or compaction.
//
//	go get github.com/katalvlaran/ldgraph
package ldgraph
