package resolve

import (
	"io"

	"uml-generator/internal/uml"
)

// Emitter serializes resolved descriptors into target source text.
type Emitter interface {
	Comment(text string)
	ClassDef(c *uml.Class)
	Enumeration(e *uml.Enumeration)
	Attribute(a Attribute)
	Association(head, tail *End)
	Redefine(e *End)
	DerivedUnion(u *DerivedUnion)
	Operation(o Operation)
	Write(header string, out io.Writer) error
}

// Emit hands a plan to an emitter in generation order: comments, class
// definitions, enumerations, attributes, associations, redefinitions, derived
// unions, operations, and finally the write call. Emitted classes are marked
// written.
func Emit(p *Plan, em Emitter, header string, out io.Writer) error {
	for _, c := range p.Comments {
		em.Comment(c)
	}

	for _, c := range p.Classes {
		em.ClassDef(c)
		c.Written = true
	}

	for _, e := range p.Enumerations {
		em.Enumeration(e)
	}

	for _, a := range p.Attributes {
		em.Attribute(a)
	}

	for _, a := range p.Associations {
		em.Association(a.End, a.Opposite)
	}

	for _, r := range p.Redefinitions {
		em.Redefine(r)
	}

	for _, u := range p.DerivedUnions {
		em.DerivedUnion(u)
	}

	for _, o := range p.Operations {
		em.Operation(o)
	}

	return em.Write(header, out)
}
