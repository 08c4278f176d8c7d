package format

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownFormat is returned when no renderer has the requested name.
var ErrUnknownFormat = errors.New("unknown format")

// Registry holds registered renderers.
type Registry struct {
	formats map[string]Renderer
}

// DefaultRegistry is the global format registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new format registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Renderer),
	}
}

// Register adds a renderer to the registry.
func (r *Registry) Register(f Renderer) {
	r.formats[f.Name()] = f
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, bool) {
	f, ok := r.formats[strings.ToLower(name)]
	return f, ok
}

// GetRenderer retrieves a renderer by name or reports it as unknown.
func (r *Registry) GetRenderer(name string) (Renderer, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	return f, nil
}

// List returns all registered format names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a renderer to the default registry.
func Register(f Renderer) {
	DefaultRegistry.Register(f)
}

// Get retrieves a renderer from the default registry.
func Get(name string) (Renderer, bool) {
	return DefaultRegistry.Get(name)
}

// List returns the names in the default registry.
func List() []string {
	return DefaultRegistry.List()
}

// GetRenderer retrieves a renderer from the default registry.
func GetRenderer(name string) (Renderer, error) {
	return DefaultRegistry.GetRenderer(name)
}
