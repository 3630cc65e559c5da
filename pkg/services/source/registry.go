package source

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Factory is a function type that creates a Source for a file path
type Factory func(path string, opts Options) (Source, error)

// Registry maps file extensions to source factories
type Registry interface {
	// Register adds a factory for an extension such as ".csv"
	Register(ext string, factory Factory) error
	// Create instantiates a source for the path based on its extension
	Create(path string, opts Options) (Source, error)
	// Extensions returns the registered extensions, sorted
	Extensions() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry pre-populated with the given factories
func NewRegistry(factories map[string]Factory) Registry {
	r := &registry{factories: make(map[string]Factory, len(factories))}
	for ext, f := range factories {
		r.factories[normalizeExt(ext)] = f
	}
	return r
}

// DefaultRegistry knows CSV, JSON and XLSX files
func DefaultRegistry() Registry {
	return NewRegistry(map[string]Factory{
		".csv":  CSVFactory,
		".json": JSONFactory,
		".xlsx": XLSXFactory,
	})
}

func (r *registry) Register(ext string, factory Factory) error {
	ext = normalizeExt(ext)
	if ext == "" || ext == "." {
		return fmt.Errorf("extension cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[ext]; exists {
		return fmt.Errorf("extension %q is already registered", ext)
	}

	r.factories[ext] = factory
	return nil
}

func (r *registry) Create(path string, opts Options) (Source, error) {
	ext := normalizeExt(filepath.Ext(path))

	r.mu.RLock()
	factory, exists := r.factories[ext]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w %q: input file must be one of %s",
			ErrUnsupportedExtension, filepath.Ext(path), strings.Join(r.Extensions(), ", "))
	}

	return factory(path, opts.withDefaults())
}

func (r *registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.factories))
	for ext := range r.factories {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
