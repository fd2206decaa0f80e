package element

import "fmt"

// Graph holds every parsed element by identifier.
type Graph struct {
	elements map[string]*Element
	order    []string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{elements: make(map[string]*Element)}
}

// Add inserts an element. Adding a second element with the same id is an error.
func (g *Graph) Add(e *Element) error {
	if e.ID == "" {
		return fmt.Errorf("element of type %s has no id", e.Type)
	}

	if _, exists := g.elements[e.ID]; exists {
		return fmt.Errorf("duplicate element id %q", e.ID)
	}

	g.elements[e.ID] = e
	g.order = append(g.order, e.ID)

	return nil
}

// Get returns the element with the given id, or nil.
func (g *Graph) Get(id string) *Element {
	return g.elements[id]
}

// Len returns the number of elements.
func (g *Graph) Len() int {
	return len(g.order)
}

// Elements returns all elements in document order.
func (g *Graph) Elements() []*Element {
	out := make([]*Element, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.elements[id])
	}

	return out
}

// Resolve replaces the named reference field of e with the referenced
// elements and caches the result on e. An absent field is cached as absent
// (nil). Ids that name no element are dropped. Resolving an already resolved
// field returns the cached value.
func (g *Graph) Resolve(e *Element, field string) []*Element {
	if e == nil {
		return nil
	}

	if refs, done := e.resolved[field]; done {
		return refs
	}

	if e.resolved == nil {
		e.resolved = make(map[string][]*Element)
	}

	f := Lookup(e, field)

	var refs []*Element

	for _, id := range f.Refs {
		if target := g.elements[id]; target != nil {
			refs = append(refs, target)
		}
	}

	e.resolved[field] = refs

	return refs
}

// ResolveOne resolves a field and returns its first referenced element, or nil.
func (g *Graph) ResolveOne(e *Element, field string) *Element {
	refs := g.Resolve(e, field)
	if len(refs) == 0 {
		return nil
	}

	return refs[0]
}

// Resolved returns the cached references of a field and whether the field
// has been resolved at all.
func (e *Element) Resolved(field string) ([]*Element, bool) {
	refs, done := e.resolved[field]
	return refs, done
}
