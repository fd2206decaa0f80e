package resolve

import (
	"github.com/pkg/errors"

	"uml-generator/internal/common"
	"uml-generator/internal/diagnostic"
	"uml-generator/internal/override"
	"uml-generator/internal/uml"
)

//go:generate go tool stringer -type=Classification -output=classification_string.go

// Classification is the role an association end plays in generated code.
// Every end receives exactly one.
type Classification int

const (
	// NonNavigable - the end has no owning class and is invisible from its side.
	NonNavigable Classification = iota
	// SimpleAttribute - the association collapses into a scalar attribute.
	SimpleAttribute
	// Redefinition - the end redefines an inherited property.
	Redefinition
	// DerivedUnionMember - the end is a derived union.
	DerivedUnionMember
	// PlainAssociation - the end is emitted as a navigable association.
	PlainAssociation
)

// Fatal model errors.
var (
	ErrUnnamedEnd            = errors.New("navigable association end has no name")
	ErrDuplicateDerivedUnion = errors.New("duplicate derived union")
	ErrGeneralizationCycle   = errors.New("generalization cycle")
)

// Diagnostic codes.
const (
	CodeStereotype        = "stereotype"
	CodeUnknownStereotype = "unknown_stereotype"
	CodeSimpleAttribute   = "simple_attribute"
	CodeRedefine          = "redefine"
	CodeNotDerivedUnion   = "not_derived_union"
	CodeSuggestion        = "suggestion"
	CodeUnknownClass      = "unknown_class"
	CodeBadAssociation    = "bad_association"
)

// Policy is the manual override policy consulted during resolution.
type Policy interface {
	// Derives reports whether "<Class>.<property>" is declared derived.
	Derives(qualified string) bool
	// Attribute returns a manually supplied type/default for "<Class>.<property>".
	Attribute(qualified string) (override.Attribute, bool)
}

// Config holds configuration for the resolution process.
type Config struct {
	// EnumerationSuffixes marks classes whose name ends with one of these as enumerations.
	EnumerationSuffixes []string
	// SimpleAttributeStereotype names the stereotype of scalar value classes.
	SimpleAttributeStereotype string
	// StrictMode fails resolution when any warning was recorded.
	StrictMode bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{
		EnumerationSuffixes:       []string{"Kind", "Sort"},
		SimpleAttributeStereotype: "SimpleAttribute",
		StrictMode:                false,
	}
}

// Multiplicity holds normalized lower and upper bounds.
type Multiplicity struct {
	Lower string
	Upper string
}

// NormalizeMultiplicity applies the bound defaults: a missing upper bound is
// "*", a missing lower bound equals the upper bound, and a lower bound of "*"
// becomes "0".
func NormalizeMultiplicity(lowerValue, upperValue string) Multiplicity {
	upper := upperValue
	if upper == "" {
		upper = "*"
	}

	lower := lowerValue
	if lower == "" {
		lower = upper
	}

	if lower == "*" {
		lower = "0"
	}

	return Multiplicity{Lower: lower, Upper: upper}
}

// IsMany reports whether the upper bound admits more than one value.
func (m Multiplicity) IsMany() bool {
	return m.Upper == "*" || (m.Upper != "0" && m.Upper != "1")
}

// End is one resolved association end.
type End struct {
	Property *uml.Property
	// Owner is the owning class (class_), nil when not navigable.
	Owner *uml.Class
	// Type is the class at this end.
	Type *uml.Class

	Navigable         bool
	Name              string
	ClassName         string
	OppositeClassName string
	Multiplicity
	Composite bool
	Derived   bool
	Subsets   []string
	Redefines string

	Classification Classification
}

// Qualified returns "<Class>.<name>".
func (e *End) Qualified() string {
	return e.ClassName + "." + e.Name
}

// Tags holds the stereotype-carried values of one property.
type Tags struct {
	Subsets   []string
	Redefines string
}

// TagTable holds parsed tags keyed by qualified property name.
type TagTable map[string]Tags

// AttributeSource tells how an attribute was produced.
type AttributeSource int

const (
	// AttributePlain - an owned attribute without association.
	AttributePlain AttributeSource = iota
	// AttributeSimple - an association rewritten as a scalar attribute.
	AttributeSimple
	// AttributeDerived - an owned attribute declared derived by the overrides.
	AttributeDerived
)

// String returns a human-readable source name.
func (s AttributeSource) String() string {
	switch s {
	case AttributePlain:
		return "plain"
	case AttributeSimple:
		return "simple"
	case AttributeDerived:
		return "derived"
	default:
		return common.UnknownStr
	}
}

// Attribute is a resolved scalar or enumeration attribute.
type Attribute struct {
	PropertyID string
	ClassName  string
	Name       string
	// Type is the scalar type name, or the enumeration name.
	Type string
	// Enumeration is set when the attribute is enumeration-typed.
	Enumeration *uml.Enumeration
	// Default is the literal default value, if any.
	Default *string
	Multiplicity
	Source AttributeSource
}

// Qualified returns "<Class>.<name>".
func (a Attribute) Qualified() string {
	return a.ClassName + "." + a.Name
}

// AssociationPair is a plain navigable association end with its opposite.
type AssociationPair struct {
	End      *End
	Opposite *End
}

// DerivedUnion is a derived property whose values are the union of the
// properties that subset it.
type DerivedUnion struct {
	*End
	Union []*End
}

// Operation is a resolved class operation.
type Operation struct {
	ID        string
	ClassName string
	Name      string
}

// Plan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// Classes are the retained classes in model order.
	Classes      []*uml.Class
	Enumerations []*uml.Enumeration
	// Attributes holds plain, then simple, then derived attributes.
	Attributes    []Attribute
	Associations  []AssociationPair
	Redefinitions []*End
	DerivedUnions []*DerivedUnion
	Operations    []Operation
	// Ends holds every resolved association end, in association order.
	Ends []*End
	Tags TagTable
	// Comments are notices destined for the generated output.
	Comments    []string
	Diagnostics diagnostic.Diagnostics
	Model       *uml.Model
}

func newPlan(m *uml.Model) *Plan {
	return &Plan{
		Tags:  make(TagTable),
		Model: m,
	}
}

func (p *Plan) comment(msg string) {
	p.Comments = append(p.Comments, msg)
}
