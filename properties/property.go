package properties

import (
	"fmt"
	"strconv"

	"uml-generator/internal/common"
)

// Kind is the flavor of a property.
type Kind int

const (
	// KindAttribute - a scalar value.
	KindAttribute Kind = iota
	// KindEnumeration - a value restricted to an enumeration's literals.
	KindEnumeration
	// KindAssociation - a reference to instances of another class.
	KindAssociation
	// KindDerivedUnion - the union of the properties subsetting it.
	KindDerivedUnion
	// KindRedefine - an association replacing an inherited property.
	KindRedefine
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindEnumeration:
		return "enumeration"
	case KindAssociation:
		return "association"
	case KindDerivedUnion:
		return "derivedunion"
	case KindRedefine:
		return "redefine"
	default:
		return common.UnknownStr
	}
}

// Unlimited is the upper bound of a property without an upper limit.
const Unlimited = "*"

// Multiplicity holds the lower and upper bound as written in the model.
type Multiplicity struct {
	Lower string
	Upper string
}

// IsMany reports whether the property holds more than one value.
func (m Multiplicity) IsMany() bool {
	return m.Upper == Unlimited || (m.Upper != "0" && m.Upper != "1")
}

// Max returns the numeric upper bound, or -1 when unlimited or unparsable.
func (m Multiplicity) Max() int {
	n, err := strconv.Atoi(m.Upper)
	if err != nil {
		return -1
	}

	return n
}

func (m Multiplicity) String() string {
	return m.Lower + ".." + m.Upper
}

// Property describes one property of a class.
type Property struct {
	Name string
	Kind Kind

	// Type is the scalar type name of attributes.
	Type string
	// Class is the type of association ends.
	Class *Class
	// Enumeration is the type of enumeration attributes.
	Enumeration *Enumeration

	Multiplicity Multiplicity
	Default      *string
	Composite    bool
	Derived      bool
	Opposite     string

	// redefines names the inherited property replaced by a redefinition.
	redefines string
	// subsets holds the members of a derived union.
	subsets []*Property

	owner *Class
}

// Owner returns the class the property was added to.
func (p *Property) Owner() *Class {
	return p.owner
}

// Redefines returns the name of the property a redefinition replaces.
func (p *Property) Redefines() string {
	return p.redefines
}

// Original returns the inherited property a redefinition replaces, or nil.
func (p *Property) Original() *Property {
	if p.Kind != KindRedefine || p.owner == nil {
		return nil
	}

	for _, g := range p.owner.generalizations {
		if orig := g.Property(p.redefines); orig != nil {
			return orig
		}
	}

	return nil
}

// Subsets returns the members of a derived union.
func (p *Property) Subsets() []*Property {
	return p.subsets
}

// Qualified returns "<Class>.<name>".
func (p *Property) Qualified() string {
	if p.owner == nil {
		return p.Name
	}

	return p.owner.Name + "." + p.Name
}

func (p *Property) String() string {
	return fmt.Sprintf("%s %s [%s]", p.Kind, p.Qualified(), p.Multiplicity)
}

// Option configures a property at construction.
type Option func(*Property)

// Bounds sets the multiplicity.
func Bounds(lower, upper string) Option {
	return func(p *Property) {
		p.Multiplicity = Multiplicity{Lower: lower, Upper: upper}
	}
}

// Default sets the literal default value.
func Default(v string) Option {
	return func(p *Property) {
		p.Default = &v
	}
}

// Composite marks an association end as owning its values.
func Composite() Option {
	return func(p *Property) {
		p.Composite = true
	}
}

// Derived marks a property whose value is computed.
func Derived() Option {
	return func(p *Property) {
		p.Derived = true
	}
}

// Opposite names the property at the other end of an association.
func Opposite(name string) Option {
	return func(p *Property) {
		p.Opposite = name
	}
}

func newProperty(name string, kind Kind, opts []Option) *Property {
	p := &Property{
		Name:         name,
		Kind:         kind,
		Multiplicity: Multiplicity{Lower: "0", Upper: "1"},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// NewAttribute creates a scalar attribute. Attributes default to an optional
// single value.
func NewAttribute(name, typ string, opts ...Option) *Property {
	p := newProperty(name, KindAttribute, opts)
	p.Type = typ

	return p
}

// NewEnumerationAttribute creates an attribute restricted to e's literals.
func NewEnumerationAttribute(name string, e *Enumeration, opts ...Option) *Property {
	p := newProperty(name, KindEnumeration, opts)
	p.Enumeration = e

	if e != nil {
		p.Type = e.Name
	}

	return p
}

// NewAssociation creates a navigable association end typed by class.
func NewAssociation(name string, class *Class, opts ...Option) *Property {
	p := newProperty(name, KindAssociation, append([]Option{Bounds("0", Unlimited)}, opts...))
	p.Class = class

	return p
}

// NewRedefine creates an association end replacing the inherited property
// named redefines.
func NewRedefine(name string, class *Class, redefines string, opts ...Option) *Property {
	p := newProperty(name, KindRedefine, append([]Option{Bounds("0", Unlimited)}, opts...))
	p.Class = class
	p.redefines = redefines

	return p
}

// NewDerivedUnion creates a derived union typed by class. Members are linked
// with Subsets once every property is declared.
func NewDerivedUnion(name string, class *Class, opts ...Option) *Property {
	p := newProperty(name, KindDerivedUnion, append([]Option{Bounds("0", Unlimited)}, opts...))
	p.Class = class
	p.Derived = true
	p.subsets = []*Property{}

	return p
}

// Subsets adds members to a derived union. Nil members are ignored.
func Subsets(union *Property, members ...*Property) {
	if union == nil {
		panic("properties: subsets of an undeclared derived union")
	}

	if union.Kind != KindDerivedUnion {
		panic(fmt.Sprintf("properties: %s is not a derived union", union.Qualified()))
	}

	for _, m := range members {
		if m != nil {
			union.subsets = append(union.subsets, m)
		}
	}
}
