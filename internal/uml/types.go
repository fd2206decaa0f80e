// Package uml holds the typed model elements the resolver works on.
//
// The classifier turns generic element.Element nodes into these structs.
// Identifier fields (ClassID, TypeID, ...) still name raw elements; the
// resolver turns them into links.
package uml

import "uml-generator/internal/element"

// Class is a structural class of the model.
type Class struct {
	ID   string
	Name string

	// Generalization lists the direct supertypes.
	Generalization []*Class
	// Specialization lists the direct subtypes.
	Specialization []*Class
	// StereotypeName is the applied stereotype tag; empty when none.
	StereotypeName string

	AppliedStereotype []string
	OwnedAttribute    []string
	OwnedOperation    []string

	// Written is set by emission, never by resolution.
	Written bool

	Element *element.Element
}

// HasStereotype reports whether the class is tagged with the given stereotype.
func (c *Class) HasStereotype(name string) bool {
	return c != nil && c.StereotypeName != "" && c.StereotypeName == name
}

// Enumeration is a class whose literals are its owned attribute names.
type Enumeration struct {
	ID             string
	Name           string
	OwnedAttribute []string
	// Enumerates holds the literal names in model order.
	Enumerates []string

	Element *element.Element
}

// Property is an association end or a plain attribute.
type Property struct {
	ID   string
	Name string

	// ClassID is the owning class (class_); empty means non-navigable.
	ClassID       string
	TypeID        string
	TypeValue     string
	AssociationID string
	LowerValue    string
	UpperValue    string
	DefaultValue  string
	Aggregation   string
	IsDerived     bool

	// Stereotypes are the applied stereotype instances, resolved eagerly.
	Stereotypes []*element.Element

	Written bool

	Element *element.Element
}

// Association is a binary association between two member ends.
type Association struct {
	ID        string
	MemberEnd []string

	Element *element.Element
}

// Generalization links a specific class to a general one.
type Generalization struct {
	ID       string
	Specific string
	General  string
}

// Operation is an operation owned by a class.
type Operation struct {
	ID   string
	Name string

	Element *element.Element
}

// Extension attaches a profile stereotype to a metaclass.
type Extension struct {
	ID        string
	MemberEnd []string

	Element *element.Element
}

// Model is the classified, bucketed model.
type Model struct {
	Graph *element.Graph

	Classes         map[string]*Class
	Enumerations    map[string]*Enumeration
	Generalizations map[string]*Generalization
	Associations    map[string]*Association
	Properties      map[string]*Property
	Operations      map[string]*Operation
	Extensions      map[string]*Extension

	// Document order of each bucket.
	ClassOrder          []string
	EnumerationOrder    []string
	GeneralizationOrder []string
	AssociationOrder    []string
	PropertyOrder       []string
	ExtensionOrder      []string
}

// NewModel creates an empty model over g.
func NewModel(g *element.Graph) *Model {
	return &Model{
		Graph:           g,
		Classes:         make(map[string]*Class),
		Enumerations:    make(map[string]*Enumeration),
		Generalizations: make(map[string]*Generalization),
		Associations:    make(map[string]*Association),
		Properties:      make(map[string]*Property),
		Operations:      make(map[string]*Operation),
		Extensions:      make(map[string]*Extension),
	}
}

// OrderedClasses returns the classes of set in document order.
func (m *Model) OrderedClasses(set map[string]*Class) []*Class {
	out := make([]*Class, 0, len(set))
	for _, id := range m.ClassOrder {
		if c, ok := set[id]; ok {
			out = append(out, c)
		}
	}

	return out
}

// OrderedEnumerations returns the enumerations in document order.
func (m *Model) OrderedEnumerations() []*Enumeration {
	out := make([]*Enumeration, 0, len(m.Enumerations))
	for _, id := range m.EnumerationOrder {
		out = append(out, m.Enumerations[id])
	}

	return out
}
