// Package catalog holds the static agent personas crews are assembled from.
package catalog

import (
	"errors"
	"fmt"

	"Crewflow/pkg/types"
)

// ErrNotFound is returned when a role has no catalog record.
var ErrNotFound = errors.New("agent not found")

// NotFoundError names the role that failed to resolve.
type NotFoundError struct {
	Role string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Role)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Catalog is a read-only index of agent personas.
type Catalog struct {
	agents map[types.Role]types.AgentSpec
	order  []types.Role
}

// New builds a catalog from records; duplicate roles are rejected.
func New(records ...types.AgentSpec) (*Catalog, error) {
	c := &Catalog{agents: make(map[types.Role]types.AgentSpec, len(records))}
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("catalog record missing role id: %q", r.Role)
		}
		if _, dup := c.agents[r.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog role: %s", r.ID)
		}
		c.agents[r.ID] = r
		c.order = append(c.order, r.ID)
	}
	return c, nil
}

var defaultCatalog = mustNew(records()...)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

func mustNew(records ...types.AgentSpec) *Catalog {
	c, err := New(records...)
	if err != nil {
		panic(err)
	}
	return c
}

func records() []types.AgentSpec {
	var all []types.AgentSpec
	all = append(all, mlAgents...)
	all = append(all, researchAgents...)
	all = append(all, academicAgents...)
	all = append(all, contentAgents...)
	all = append(all, businessAgents...)
	all = append(all, devCodeAgents...)
	all = append(all, documentationAgents...)
	return all
}

// Lookup returns a copy of the persona for role.
func (c *Catalog) Lookup(role types.Role) (types.AgentSpec, error) {
	a, ok := c.agents[role]
	if !ok {
		return types.AgentSpec{}, &NotFoundError{Role: string(role)}
	}
	a.Tools = append([]types.Tool(nil), a.Tools...)
	return a, nil
}

// LookupName resolves a role by its string name.
func (c *Catalog) LookupName(name string) (types.AgentSpec, error) {
	role, err := types.ParseRole(name)
	if err != nil {
		return types.AgentSpec{}, &NotFoundError{Role: name}
	}
	return c.Lookup(role)
}

func (c *Catalog) Len() int {
	return len(c.order)
}
