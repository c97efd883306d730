package pixelstream

import (
	"fmt"
	"sort"
	"sync"
)

// A BackendFactory constructs a fresh Backend. NewBackend calls the
// factory once per request, so factories must not share mutable state
// between the backends they return.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	registry   = make(map[string]BackendFactory)
)

// Register makes a backend available under the given name. Backend
// packages call it from init, so importing a backend for side effects is
// enough to enable it:
//
//	import _ "github.com/gogpu/pixelstream/backends/trace"
//
// A nil factory or a name that is already taken panics; both indicate a
// programming error that should surface at startup, not at draw time.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("pixelstream: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("pixelstream: Register called twice for " + name)
	}
	registry[name] = factory
}

// NewBackend constructs the backend registered under name. The error for
// an unknown name mentions the import side-effect convention, since a
// missing blank import is the usual cause.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("pixelstream: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend is NewBackend for callers that link their backend in at
// compile time and cannot proceed without it.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
