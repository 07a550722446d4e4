package core

import (
	"errors"
	"sync"
)

// ErrLanguageValueNotString is returned when a language tag is supplied
// alongside a non-string literal value.
var ErrLanguageValueNotString = errors.New("core: language requires a string value")

// JSONType is the sentinel AttributeValue.Type used for opaque @json literals.
const JSONType = "@json"

// AttributeValue is a single literal value recorded against a predicate.
// Language and Type are mutually informative but independent: Language is
// an RFC-5646 tag (empty if none), Type is either a datatype IRI or the
// JSONType sentinel (empty if the value is an untyped, unlocalized literal).
type AttributeValue struct {
	Value    any
	Language string
	Type     string
}

// attrEntry is the per-predicate ordered list of values plus the language
// slot index needed to make append-replace O(1).
type attrEntry struct {
	values    []AttributeValue
	langSlots map[string]int // language -> index into values
}

// AttributeBag is a per-vertex multimap of predicate -> ordered literal
// values. For any (predicate, language) pair at most one value exists;
// appending another value under that language replaces it in place. For
// language == "", multiple values may coexist and append preserves
// insertion order.
type AttributeBag struct {
	mu      sync.RWMutex
	entries map[string]*attrEntry
}

// NewAttributeBag returns an empty attribute bag.
func NewAttributeBag() *AttributeBag {
	return &AttributeBag{entries: make(map[string]*attrEntry)}
}

// Append adds value under predicate. If language is non-empty, it replaces
// any prior value recorded for that (predicate, language) pair; otherwise
// it is appended to the unlocalized list, preserving insertion order.
// asJSON marks the value's Type as the JSONType sentinel.
func (b *AttributeBag) Append(predicate string, value any, language string, asJSON bool) error {
	if language != "" {
		if _, ok := value.(string); !ok {
			return ErrLanguageValueNotString
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[predicate]
	if !ok {
		e = &attrEntry{langSlots: make(map[string]int)}
		b.entries[predicate] = e
	}

	av := AttributeValue{Value: value, Language: language}
	if asJSON {
		av.Type = JSONType
	}

	if language == "" {
		e.values = append(e.values, av)
		return nil
	}

	if idx, exists := e.langSlots[language]; exists {
		e.values[idx] = av
		return nil
	}
	e.langSlots[language] = len(e.values)
	e.values = append(e.values, av)

	return nil
}

// Set replaces the value(s) recorded under predicate. With a language tag
// it behaves like Append (single slot per language); without one it
// discards the whole prior list and records exactly one value.
func (b *AttributeBag) Set(predicate string, value any, language string, asJSON bool) error {
	if language != "" {
		return b.Append(predicate, value, language, asJSON)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	av := AttributeValue{Value: value}
	if asJSON {
		av.Type = JSONType
	}
	b.entries[predicate] = &attrEntry{
		values:    []AttributeValue{av},
		langSlots: make(map[string]int),
	}

	return nil
}

// Delete removes the whole entry for predicate, if any.
func (b *AttributeBag) Delete(predicate string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, predicate)
}

// Get returns the first recorded value for predicate irrespective of
// language, and whether one exists.
func (b *AttributeBag) Get(predicate string) (AttributeValue, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.entries[predicate]
	if !ok || len(e.values) == 0 {
		return AttributeValue{}, false
	}
	return e.values[0], true
}

// GetLanguage returns the value recorded for (predicate, language), if any.
func (b *AttributeBag) GetLanguage(predicate, language string) (AttributeValue, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.entries[predicate]
	if !ok {
		return AttributeValue{}, false
	}
	idx, ok := e.langSlots[language]
	if !ok {
		return AttributeValue{}, false
	}
	return e.values[idx], true
}

// GetAll returns a copy of the whole ordered value list for predicate, in
// first-added order.
func (b *AttributeBag) GetAll(predicate string) []AttributeValue {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.entries[predicate]
	if !ok {
		return nil
	}
	out := make([]AttributeValue, len(e.values))
	copy(out, e.values)

	return out
}

// Has reports whether predicate carries value, optionally restricted to a
// single language slot (pass "" to search every slot).
func (b *AttributeBag) Has(predicate string, value any, language string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.entries[predicate]
	if !ok {
		return false
	}
	if language != "" {
		idx, ok := e.langSlots[language]
		return ok && e.values[idx].Value == value
	}
	for _, av := range e.values {
		if av.Value == value {
			return true
		}
	}
	return false
}

// Predicates returns the set of predicates currently carrying values, in no
// particular order; callers that need determinism should sort the result.
func (b *AttributeBag) Predicates() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, 0, len(b.entries))
	for p := range b.entries {
		out = append(out, p)
	}
	return out
}

// Len reports the number of predicates currently carrying at least one value.
func (b *AttributeBag) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
