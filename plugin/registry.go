package plugin

import (
	"fmt"
	"sync"

	"github.com/tersify/go-tersify/ir"
)

// Registry maps concrete type names to the plugin summarizing them. A
// Registry may be constructed explicitly and handed to an engine, or
// the process-wide default may be used via Init/Register/Default.
type Registry struct {
	mu sync.RWMutex
	d  map[string]Plugin
}

func NewRegistry(plugins ...Plugin) *Registry {
	r := &Registry{d: map[string]Plugin{}}
	for _, p := range plugins {
		r.Register(p)
	}
	return r
}

// Register records every type name the plugin handles. When two plugins
// claim the same type name the later registration silently wins.
func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, typeName := range p.Handles() {
		r.d[typeName] = p
	}
}

// Lookup returns the plugin registered for the exact type name, or nil.
func (r *Registry) Lookup(typeName string) Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.d[typeName]
}

// TypeNames returns the registered type names in unspecified order.
func (r *Registry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.d))
	for typeName := range r.d {
		res = append(res, typeName)
	}
	return res
}

// Summarize builds the scalar summary node for an instance whose type
// has a registered plugin. It returns nil with no error when no plugin
// handles the instance's type, leaving the node for structural descent.
func (r *Registry) Summarize(n *ir.Node) (*ir.Node, error) {
	if n.Type != ir.InstanceType {
		return nil, nil
	}
	p := r.Lookup(n.TypeName)
	if p == nil {
		return nil, nil
	}
	desc, err := p.Describe(n)
	if err != nil {
		return nil, fmt.Errorf("plugin describing %s: %w", n.TypeName, err)
	}
	identity := ir.IdentityToken(n)
	text := fmt.Sprintf("%s (%s) %s", n.TypeName, identity, desc)
	return ir.FromString(text).WithTag(ir.SummaryTag(n.TypeName, identity)), nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Init populates the process-wide default registry exactly once and
// returns it. Later calls are no-ops regardless of arguments.
func Init(plugins ...Plugin) *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry(plugins...)
	})
	return defaultReg
}

// Default returns the process-wide default registry, initializing it
// empty if Init has not run.
func Default() *Registry {
	return Init()
}

// Register adds a plugin to the default registry.
func Register(p Plugin) {
	Default().Register(p)
}

// Lookup consults the default registry.
func Lookup(typeName string) Plugin {
	return Default().Lookup(typeName)
}
