package ldgraph

import "errors"

// ErrDocumentParse wraps a failure from the external JSON-LD processor
// (expand, compact, or frame).
var ErrDocumentParse = errors.New("ldgraph: external document processing failed")
