package catalog

import (
	"fmt"
	"sync"

	"github.com/asakaida/monban/internal/entities"
)

// Catalog holds the actions available per resource kind.
// Every kind carries the base actions; resource-specific actions are
// registered at configuration time, before the catalog is read.
type Catalog struct {
	mu         sync.RWMutex
	base       []*entities.Action
	extensions map[string][]*entities.Action
}

// baseActions returns the actions every resource kind supports
func baseActions() []*entities.Action {
	return []*entities.Action{
		{Name: entities.SuperAdminAction, Title: "Configure", Description: "Configure options and permissions"},
		{Name: "core.manage", Title: "Access Administration Interface", Description: "Open the administration interface"},
		{Name: "core.create", Title: "Create", Description: "Create new items"},
		{Name: "core.delete", Title: "Delete", Description: "Delete existing items"},
		{Name: "core.edit", Title: "Edit", Description: "Edit existing items"},
		{Name: "core.edit.state", Title: "Edit State", Description: "Publish and unpublish items"},
	}
}

// New creates a Catalog with the base action set
func New() *Catalog {
	return &Catalog{
		base:       baseActions(),
		extensions: make(map[string][]*entities.Action),
	}
}

// Register adds resource-specific actions for a resource kind.
// Action names must be unique within the kind's full catalog.
func (c *Catalog) Register(resourceKind string, actions ...*entities.Action) error {
	if resourceKind == "" {
		return fmt.Errorf("resource kind is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	known := make(map[string]bool, len(c.base)+len(c.extensions[resourceKind]))
	for _, a := range c.base {
		known[a.Name] = true
	}
	for _, a := range c.extensions[resourceKind] {
		known[a.Name] = true
	}

	for _, a := range actions {
		if a.Name == "" {
			return fmt.Errorf("action name is required")
		}
		if known[a.Name] {
			return fmt.Errorf("duplicate action %q for resource kind %q", a.Name, resourceKind)
		}
		known[a.Name] = true
	}

	c.extensions[resourceKind] = append(c.extensions[resourceKind], actions...)
	return nil
}

// Actions returns the full action catalog for a resource kind:
// the base actions followed by registered extensions. The returned slice
// is a copy and safe to retain.
func (c *Catalog) Actions(resourceKind string) []*entities.Action {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*entities.Action, 0, len(c.base)+len(c.extensions[resourceKind]))
	out = append(out, c.base...)
	out = append(out, c.extensions[resourceKind]...)
	return out
}

// Get returns the action with the given name for a resource kind
func (c *Catalog) Get(resourceKind, name string) (*entities.Action, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, a := range c.base {
		if a.Name == name {
			return a, nil
		}
	}
	for _, a := range c.extensions[resourceKind] {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("action %q not found for resource kind %q", name, resourceKind)
}
