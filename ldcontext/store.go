// Package ldcontext holds named JSON-LD context documents and exposes a
// single document-loader facade (matching the piprate/json-gold
// ld.DocumentLoader contract) that resolves a requested URL in order:
// registered context, then (if enabled) an injected remote loader,
// otherwise ErrContextNotFound.
package ldcontext

import (
	"errors"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/piprate/json-gold/ld"
)

var (
	// ErrDuplicateContext indicates addContext was called twice for the
	// same URL (case-insensitively).
	ErrDuplicateContext = errors.New("ldcontext: duplicate context")

	// ErrContextNotFound indicates a requested URL is neither registered
	// nor resolvable via the remote loader.
	ErrContextNotFound = errors.New("ldcontext: context not found")
)

// RemoteLoader resolves a document from outside the store, e.g. over HTTP.
// It is the injected collaborator for remote-context fetching.
type RemoteLoader interface {
	LoadDocument(url string) (*ld.RemoteDocument, error)
}

// Store is a case-insensitive-keyed map of url -> context JSON, plus
// optional remote-loader delegation with a bounded LRU cache of remote
// fetches so a hot @context URL is not re-fetched on every call.
type Store struct {
	mu            sync.RWMutex
	contexts      map[string]any
	remoteEnabled bool
	remoteLoader  RemoteLoader
	remoteCache   *lru.Cache[string, *ld.RemoteDocument]
}

// Option configures a Store at construction.
type Option func(*Store)

// WithRemoteLoader enables remote-context resolution via loader, used when
// a URL is not found in the registered context set.
func WithRemoteLoader(loader RemoteLoader) Option {
	return func(s *Store) {
		s.remoteEnabled = true
		s.remoteLoader = loader
	}
}

// WithCacheSize overrides the default remote-fetch cache capacity (256 entries).
func WithCacheSize(size int) Option {
	return func(s *Store) {
		cache, err := lru.New[string, *ld.RemoteDocument](size)
		if err == nil {
			s.remoteCache = cache
		}
	}
}

// NewStore returns an empty context store.
func NewStore(opts ...Option) *Store {
	cache, _ := lru.New[string, *ld.RemoteDocument](256)
	s := &Store{
		contexts:    make(map[string]any),
		remoteCache: cache,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddContext registers doc under url. Fails with ErrDuplicateContext if a
// context is already registered for url (case-insensitively).
func (s *Store) AddContext(url string, doc any) error {
	key := strings.ToLower(url)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contexts[key]; exists {
		return ErrDuplicateContext
	}
	s.contexts[key] = doc

	return nil
}

// GetContext resolves url: registered context first, then the remote
// loader if enabled, otherwise ErrContextNotFound.
func (s *Store) GetContext(url string) (any, error) {
	key := strings.ToLower(url)

	s.mu.RLock()
	doc, ok := s.contexts[key]
	s.mu.RUnlock()
	if ok {
		return doc, nil
	}

	if !s.remoteEnabled {
		return nil, ErrContextNotFound
	}

	if s.remoteCache != nil {
		if cached, ok := s.remoteCache.Get(key); ok {
			return cached.Document, nil
		}
	}

	remote, err := s.remoteLoader.LoadDocument(url)
	if err != nil {
		return nil, err
	}
	if s.remoteCache != nil {
		s.remoteCache.Add(key, remote)
	}

	return remote.Document, nil
}

// DocumentLoader returns a json-gold ld.DocumentLoader backed by this
// store, suitable for passing to an external JSON-LD processor's Expand/
// Compact/Frame options.
func (s *Store) DocumentLoader() ld.DocumentLoader {
	return storeLoader{s}
}

type storeLoader struct{ s *Store }

func (l storeLoader) LoadDocument(url string) (*ld.RemoteDocument, error) {
	doc, err := l.s.GetContext(url)
	if err != nil {
		return nil, err
	}
	return &ld.RemoteDocument{DocumentURL: url, Document: doc}, nil
}
