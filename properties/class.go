package properties

import (
	"fmt"
	"slices"
)

// Class is a model class with its properties and operations.
type Class struct {
	Name string

	generalizations []*Class
	properties      map[string]*Property
	order           []string
	operations      []string
}

// NewClass creates a class specializing the given classes.
func NewClass(name string, generalizations ...*Class) *Class {
	return &Class{
		Name:            name,
		generalizations: generalizations,
		properties:      make(map[string]*Property),
	}
}

// Generalizations returns the direct supertypes.
func (c *Class) Generalizations() []*Class {
	return c.generalizations
}

// Add attaches p to the class and returns it. Adding a second property with
// the same name panics, since generated code declares each name once.
func (c *Class) Add(p *Property) *Property {
	if _, ok := c.properties[p.Name]; ok {
		panic(fmt.Sprintf("properties: %s.%s declared twice", c.Name, p.Name))
	}

	p.owner = c
	c.properties[p.Name] = p
	c.order = append(c.order, p.Name)

	return p
}

// Property looks up a property by name, first on the class and then on its
// supertypes depth first. It returns nil when no class in the hierarchy
// declares the name.
func (c *Class) Property(name string) *Property {
	return c.lookup(name, map[*Class]bool{})
}

func (c *Class) lookup(name string, seen map[*Class]bool) *Property {
	if seen[c] {
		return nil
	}

	seen[c] = true

	if p, ok := c.properties[name]; ok {
		return p
	}

	for _, g := range c.generalizations {
		if p := g.lookup(name, seen); p != nil {
			return p
		}
	}

	return nil
}

// Properties returns the properties declared on the class, in declaration order.
func (c *Class) Properties() []*Property {
	out := make([]*Property, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.properties[name])
	}

	return out
}

// IsSubclassOf reports whether other is c or one of its supertypes.
func (c *Class) IsSubclassOf(other *Class) bool {
	if c == other {
		return true
	}

	return slices.ContainsFunc(c.generalizations, func(g *Class) bool {
		return g.IsSubclassOf(other)
	})
}

// AddOperation records an operation name.
func (c *Class) AddOperation(name string) {
	c.operations = append(c.operations, name)
}

// Operations returns the operation names in declaration order.
func (c *Class) Operations() []string {
	return c.operations
}

func (c *Class) String() string {
	return c.Name
}

// Enumeration is a named set of literals.
type Enumeration struct {
	Name     string
	Literals []string
}

// NewEnumeration creates an enumeration with the given literals.
func NewEnumeration(name string, literals ...string) *Enumeration {
	return &Enumeration{Name: name, Literals: literals}
}

// Has reports whether lit is one of the enumeration's literals.
func (e *Enumeration) Has(lit string) bool {
	return slices.Contains(e.Literals, lit)
}
