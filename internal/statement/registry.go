package statement

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a Statement of one vendor format from raw text.
type Factory func(text string, opts Options) (Statement, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a vendor format available to New. It panics if the name is
// empty, the factory is nil, or the name is already taken.
func Register(vendor string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if vendor == "" {
		panic("statement: Register with empty vendor name")
	}
	if factory == nil {
		panic("statement: Register factory is nil for " + vendor)
	}
	if _, dup := registry[vendor]; dup {
		panic("statement: Register called twice for " + vendor)
	}
	registry[vendor] = factory
}

// New builds a Statement using the factory registered for vendor.
func New(vendor, text string, opts Options) (Statement, error) {
	registryMu.RLock()
	factory, ok := registry[vendor]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVendor, vendor)
	}
	return factory(text, opts)
}

// Vendors returns the registered vendor names, sorted.
func Vendors() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
