// Package host resolves dotted type names appearing in source text to
// canonical type handles.  The reader treats resolution as authoritative and
// does not interpret the dotted path itself.
package host

import (
	"fmt"
	"strings"
	"sync"
)

// Class is a canonical handle for a host type.  Two references to the same
// type resolve to the same *Class.
type Class struct {
	name string
}

// Name returns the fully qualified name of the class.
func (c *Class) Name() string {
	return c.name
}

func (c *Class) String() string {
	return c.name
}

// Resolver resolves a dotted type path to a canonical type handle.
type Resolver interface {
	ResolveType(path string) (*Class, error)
}

// Registry is the default Resolver.  Dotted paths are taken as fully
// qualified and interned on first use.  Bare (undotted) names must have been
// registered beforehand, either directly or as the final segment of a
// registered qualified name.
type Registry struct {
	sync sync.RWMutex
	m    map[string]*Class
}

var _ Resolver = (*Registry)(nil)

// NewRegistry initializes and returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]*Class)}
}

// Register interns the qualified name and makes both the qualified name and
// its final segment resolvable.  Register returns the canonical handle.
func (r *Registry) Register(name string) *Class {
	r.sync.Lock()
	defer r.sync.Unlock()
	c := r.intern(name)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		short := name[i+1:]
		if _, ok := r.m[short]; !ok {
			r.m[short] = c
		}
	}
	return c
}

// ResolveType implements the Resolver interface.
func (r *Registry) ResolveType(path string) (*Class, error) {
	r.sync.RLock()
	c, ok := r.m[path]
	r.sync.RUnlock()
	if ok {
		return c, nil
	}
	if !strings.Contains(path, ".") {
		return nil, fmt.Errorf("unable to resolve type name: %s", path)
	}
	r.sync.Lock()
	defer r.sync.Unlock()
	return r.intern(path), nil
}

func (r *Registry) intern(name string) *Class {
	if c, ok := r.m[name]; ok {
		return c
	}
	c := &Class{name: name}
	r.m[name] = c
	return c
}
