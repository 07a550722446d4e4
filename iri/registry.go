// Package iri implements the prefix registry used to compact and expand
// IRIs: a mapping prefix -> base IRI, validated and iterated in the order
// prefixes were added (a prefix added later never shadows an earlier one
// for a given IRI).
package iri

import (
	"errors"
	"regexp"
	"strings"
	"sync"
)

var (
	// ErrInvalidPrefix indicates a prefix failed the ^[A-Za-z][A-Za-z0-9]*$ rule.
	ErrInvalidPrefix = errors.New("iri: invalid prefix syntax")

	// ErrInvalidIRI indicates an IRI failed validation.
	ErrInvalidIRI = errors.New("iri: invalid IRI")

	// ErrDuplicatePrefix indicates the prefix is already bound.
	ErrDuplicatePrefix = errors.New("iri: duplicate prefix")

	// ErrDuplicatePrefixIRI indicates another prefix already maps to the
	// same base IRI (case-insensitively).
	ErrDuplicatePrefixIRI = errors.New("iri: duplicate prefix base IRI")
)

var prefixPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Registry holds prefix -> base-IRI bindings and compacts/expands IRIs
// against them.
type Registry struct {
	mu    sync.RWMutex
	bases map[string]string // prefix -> base IRI
	order []string          // insertion order of prefixes
}

// NewRegistry returns an empty prefix registry.
func NewRegistry() *Registry {
	return &Registry{bases: make(map[string]string)}
}

// SetPrefix binds prefix to iri. Fails with ErrInvalidPrefix on syntax
// violation, ErrInvalidIRI if iri fails validation, ErrDuplicatePrefix if
// the prefix is already bound, or ErrDuplicatePrefixIRI if another prefix
// already maps to the same IRI case-insensitively.
func (r *Registry) SetPrefix(prefix, iri string) error {
	if !prefixPattern.MatchString(prefix) {
		return ErrInvalidPrefix
	}
	if err := Validate(iri); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bases[prefix]; exists {
		return ErrDuplicatePrefix
	}
	lowered := strings.ToLower(iri)
	for _, base := range r.bases {
		if strings.ToLower(base) == lowered {
			return ErrDuplicatePrefixIRI
		}
	}

	r.bases[prefix] = iri
	r.order = append(r.order, prefix)

	return nil
}

// RemovePrefix unbinds prefix. Idempotent: removing an unknown prefix is a no-op.
func (r *Registry) RemovePrefix(prefix string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bases[prefix]; !exists {
		return
	}
	delete(r.bases, prefix)
	for i, p := range r.order {
		if p == prefix {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Expand resolves iri against the registry: if the substring before the
// first ':' is a known prefix, the prefix is replaced with its base;
// otherwise iri passes through unchanged. If validate is true, the result
// is additionally run through Validate, and a non-nil error (ErrInvalidIRI)
// is returned alongside the (still-expanded) result.
func (r *Registry) Expand(in string, validate bool) (string, error) {
	out := r.expand(in)
	if validate {
		if err := Validate(out); err != nil {
			return out, err
		}
	}
	return out, nil
}

// ExpandRaw resolves iri against the registry without validation, for call
// sites that already hold a known-good IRI and don't need the error return.
func (r *Registry) ExpandRaw(in string) string {
	return r.expand(in)
}

func (r *Registry) expand(in string) string {
	idx := strings.IndexByte(in, ':')
	if idx < 0 {
		return in
	}
	prefix := in[:idx]

	r.mu.RLock()
	base, ok := r.bases[prefix]
	r.mu.RUnlock()
	if !ok {
		return in
	}
	return base + in[idx+1:]
}

// Compact rewrites iri into prefix:local form using the first registered
// prefix (in insertion order) whose base is a case-sensitive prefix of iri
// and is not itself case-insensitively identical to the whole IRI.
func (r *Registry) Compact(in string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowerIn := strings.ToLower(in)
	for _, prefix := range r.order {
		base := r.bases[prefix]
		if !strings.HasPrefix(in, base) {
			continue
		}
		if strings.ToLower(base) == lowerIn {
			continue
		}
		rest := strings.TrimPrefix(in, base)
		rest = strings.TrimPrefix(rest, "/")
		rest = strings.TrimPrefix(rest, ":")
		return prefix + ":" + rest
	}
	return in
}

// Validate checks in against the IRI syntax rule: @type is accepted
// unconditionally; otherwise there must be at least one ':' after
// position 0, and the authority (after stripping an optional leading
// "//") must be non-empty and must not start with '/' or ':'.
func Validate(in string) error {
	if in == "@type" {
		return nil
	}
	idx := strings.IndexByte(in, ':')
	if idx <= 0 {
		return ErrInvalidIRI
	}
	rest := in[idx+1:]
	rest = strings.TrimPrefix(rest, "//")
	if rest == "" || strings.HasPrefix(rest, "/") || strings.HasPrefix(rest, ":") {
		return ErrInvalidIRI
	}
	return nil
}
