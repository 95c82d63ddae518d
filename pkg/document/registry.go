package document

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-textmodel/pkg/model"
)

// Registry stores named sub-models referenced by documents. Safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	models map[string]model.TextModel
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[string]model.TextModel),
	}
}

// Register adds a sub-model by name. Duplicate names return an error.
func (r *Registry) Register(name string, m model.TextModel) error {
	if m == nil {
		return fmt.Errorf("document: model is required")
	}
	if name == "" {
		return fmt.Errorf("document: model name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.models[name]; exists {
		return fmt.Errorf("document: model %q already registered", name)
	}

	r.models[name] = m
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, m model.TextModel) {
	if err := r.Register(name, m); err != nil {
		panic(err)
	}
}

// Get retrieves a sub-model by name.
func (r *Registry) Get(name string) (model.TextModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.models[name]
	return m, ok
}

// Has reports whether a sub-model is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns the sorted registered names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
