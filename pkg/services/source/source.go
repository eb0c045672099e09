package source

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
)

// Source loads a validated metrics table from some provenance: the embedded
// dataset, a local CSV file or a local DuckDB database. Aggregation and
// reporting never care which.
type Source interface {
	Load(ctx context.Context) (domain.MetricsTable, error)
}

// Factory is a function type that creates a Source from an input path
type Factory func(path string) (Source, error)

// Registry manages source factories keyed by kind
type Registry interface {
	// Register adds a new source factory
	Register(kind string, factory Factory) error
	// Create instantiates a source of the specified kind for the given input path
	Create(kind, path string) (Source, error)
	// ListKinds returns the registered source kinds, sorted
	ListKinds() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry pre-populated with the given factories.
func NewRegistry(factories map[string]Factory) Registry {
	r := &registry{factories: make(map[string]Factory)}
	for kind, factory := range factories {
		r.factories[kind] = factory
	}
	return r
}

func (r *registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return fmt.Errorf("source kind cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("source kind %q is already registered", kind)
	}

	r.factories[kind] = factory
	return nil
}

func (r *registry) Create(kind, path string) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[kind]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("source kind %q is not registered. Registered kinds: %v", kind, r.ListKinds())
	}

	return factory(path)
}

func (r *registry) ListKinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
