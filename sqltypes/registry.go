package sqltypes

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Backend is a named group of type tags for one database system.
type Backend interface {
	// Name returns the backend name, e.g. "postgres".
	Name() string
	// Entries returns the backend's catalog.
	Entries() []Entry
}

// providerMatcher is implemented by backends reachable under more than one
// provider name ("postgresql", "pg").
type providerMatcher interface {
	IsProvider(name string) bool
}

type catalog struct {
	backend Backend
	entries []Entry
	byName  map[string]int
}

// Registry composes the backends a program was built with.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[string]*catalog
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{catalogs: make(map[string]*catalog)}
}

// Compose creates a registry holding exactly the given backends.
func Compose(backends ...Backend) (*Registry, error) {
	r := NewRegistry()
	for _, b := range backends {
		if err := r.Register(b); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a backend's catalog.
func (r *Registry) Register(b Backend) error {
	name := strings.ToLower(b.Name())

	cat := &catalog{backend: b, byName: make(map[string]int)}
	for _, e := range b.Entries() {
		if e.Backend == "" {
			e.Backend = name
		}
		idx := len(cat.entries)
		for _, n := range e.names() {
			if prev, ok := cat.byName[n]; ok {
				return fmt.Errorf("%s: %q declared by both %s and %s", name, n, cat.entries[prev].Name, e.Name)
			}
			cat.byName[n] = idx
		}
		cat.entries = append(cat.entries, e)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.catalogs[name]; ok {
		return lookupErr(name, "", ErrDuplicateBackend)
	}
	r.catalogs[name] = cat
	r.order = append(r.order, name)
	return nil
}

// Backends returns the names of the registered backends, sorted.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]string(nil), r.order...)
	sort.Strings(out)
	return out
}

// Backend returns the registered backend reachable under name.
func (r *Registry) Backend(name string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cat, ok := r.find(name)
	if !ok {
		return nil, lookupErr(name, "", ErrBackendNotEnabled)
	}
	return cat.backend, nil
}

// Enabled reports whether the named backend was registered.
func (r *Registry) Enabled(backend string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.find(backend)
	return ok
}

// Entries returns the catalog of one backend in declaration order.
func (r *Registry) Entries(backend string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cat, ok := r.find(backend)
	if !ok {
		return nil, lookupErr(backend, "", ErrBackendNotEnabled)
	}
	return append([]Entry(nil), cat.entries...), nil
}

// Lookup finds a tag by canonical name or alias, case-insensitively.
func (r *Registry) Lookup(backend, name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cat, ok := r.find(backend)
	if !ok {
		return Entry{}, lookupErr(backend, name, ErrBackendNotEnabled)
	}
	idx, ok := cat.byName[normalizeName(name)]
	if !ok {
		return Entry{}, lookupErr(cat.backend.Name(), name, ErrUnknownType)
	}
	return cat.entries[idx], nil
}

// LookupTag finds the entry registered for tag t.
func (r *Registry) LookupTag(backend string, t SQLType) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cat, ok := r.find(backend)
	if !ok {
		return Entry{}, lookupErr(backend, t.SQLTypeName(), ErrBackendNotEnabled)
	}
	inner := Unwrap(t)
	for _, e := range cat.entries {
		if SameType(e.Type, inner) {
			return e, nil
		}
	}
	return Entry{}, lookupErr(cat.backend.Name(), t.SQLTypeName(), ErrUnknownType)
}

// Resolve parses a column type declaration and resolves it against backend.
// A leading underscore is PostgreSQL's internal array name and resolves to
// the array form, so "_point" and "point[]" are the same column.
func (r *Registry) Resolve(backend, decl string) (Column, error) {
	d, err := ParseDecl(decl)
	if err != nil {
		return Column{}, lookupErr(backend, decl, err)
	}

	e, err := r.Lookup(backend, d.Name)
	if err != nil && strings.HasPrefix(d.Name, "_") && d.Dims == 0 {
		if inner, innerErr := r.Lookup(backend, d.Name[1:]); innerErr == nil {
			e, err = inner, nil
			d.Dims = 1
		}
	}
	if err != nil {
		return Column{}, err
	}

	if d.Dims > 0 && !e.HasArray() {
		return Column{}, lookupErr(e.Backend, decl, ErrArrayUnsupported)
	}
	return Column{Entry: e, Dims: d.Dims, Args: d.Args}, nil
}

func (r *Registry) find(backend string) (*catalog, bool) {
	name := strings.ToLower(backend)
	if cat, ok := r.catalogs[name]; ok {
		return cat, true
	}
	for _, n := range r.order {
		if pm, ok := r.catalogs[n].backend.(providerMatcher); ok && pm.IsProvider(name) {
			return r.catalogs[n], true
		}
	}
	return nil, false
}

// Default is the registry backend packages register with when imported.
var Default = NewRegistry()

// Register makes a backend available in Default. It panics if the backend is
// registered twice.
func Register(b Backend) {
	if err := Default.Register(b); err != nil {
		panic("sqltypes: Register: " + err.Error())
	}
}

// Lookup finds a tag in Default.
func Lookup(backend, name string) (Entry, error) {
	return Default.Lookup(backend, name)
}

// Resolve resolves a column type declaration against Default.
func Resolve(backend, decl string) (Column, error) {
	return Default.Resolve(backend, decl)
}

// Enabled reports whether backend was registered with Default.
func Enabled(backend string) bool {
	return Default.Enabled(backend)
}
