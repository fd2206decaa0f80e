package resolve

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"uml-generator/internal/element"
	"uml-generator/internal/uml"
)

// resolveAssociations resolves and classifies both ends of every association.
func (r *Resolver) resolveAssociations() error {
	for _, id := range r.model.AssociationOrder {
		assoc := r.model.Associations[id]

		ends, ok := r.associationEnds(assoc)
		if !ok {
			continue
		}

		for _, end := range ends {
			if err := r.parseEnd(end); err != nil {
				return err
			}
		}

		simple := r.simpleAttributeEnd(ends)

		for _, pair := range [][2]*End{{ends[0], ends[1]}, {ends[1], ends[0]}} {
			if err := r.classifyEnd(pair[0], pair[1], simple); err != nil {
				return err
			}
		}

		r.plan.Ends = append(r.plan.Ends, ends[0], ends[1])
	}

	return nil
}

// associationEnds locates both member ends and looks up their type and owner
// in the class set as it stands after metaclass removal. Associations whose
// ends point outside that set are skipped with a warning.
func (r *Resolver) associationEnds(assoc *uml.Association) ([2]*End, bool) {
	var ends [2]*End

	members := r.model.Graph.Resolve(assoc.Element, "memberEnd")
	if len(members) != 2 {
		r.plan.Diagnostics.AddWarning(CodeBadAssociation,
			fmt.Sprintf("association has %d resolvable member ends, expected 2", len(members)),
			assoc.ID, "")

		return ends, false
	}

	for i, member := range members {
		p := r.model.Properties[member.ID]
		if p == nil {
			r.plan.Diagnostics.AddWarning(CodeBadAssociation,
				fmt.Sprintf("member end %s is not a property", member.ID), assoc.ID, "")

			return ends, false
		}

		typ, ok := r.lookupClass(member, "type")
		if !ok || typ == nil {
			r.plan.Diagnostics.AddWarning(CodeUnknownClass,
				fmt.Sprintf("type of end %q is not a generated class", p.Name), p.ID, "")

			return ends, false
		}

		owner, ok := r.lookupClass(member, "class_")
		if !ok {
			r.plan.Diagnostics.AddWarning(CodeUnknownClass,
				fmt.Sprintf("owner of end %q is not a generated class", p.Name), p.ID, "")

			return ends, false
		}

		ends[i] = &End{Property: p, Type: typ, Owner: owner}
	}

	return ends, true
}

// lookupClass dereferences a reference field against the class set. A missing
// field yields (nil, true); a reference to a non-class yields (nil, false).
func (r *Resolver) lookupClass(e *element.Element, field string) (*uml.Class, bool) {
	if !e.Has(field) {
		return nil, true
	}

	target := r.model.Graph.ResolveOne(e, field)
	if target == nil {
		return nil, false
	}

	c, ok := r.allClasses[target.ID]

	return c, ok
}

// parseEnd fills in the resolution fields of head. Non-navigable ends are
// left untouched apart from Navigable.
func (r *Resolver) parseEnd(head *End) error {
	head.Navigable = head.Owner != nil
	if !head.Navigable {
		return nil
	}

	p := head.Property
	head.ClassName = head.Owner.Name

	if p.Name == "" {
		return errors.Wrapf(ErrUnnamedEnd, "%s (%s)", p.ID, head.ClassName)
	}

	head.Name = p.Name
	head.OppositeClassName = head.Type.Name
	head.Multiplicity = NormalizeMultiplicity(p.LowerValue, p.UpperValue)
	head.Composite = p.Aggregation == "composite"
	head.Derived = p.IsDerived

	tags := ParseTags(r.model.Graph, p.Stereotypes)
	head.Subsets = tags.Subsets
	head.Redefines = tags.Redefines
	r.plan.Tags[head.Qualified()] = tags

	return nil
}

// simpleAttributeEnd returns the last end typed by a simple-attribute class.
func (r *Resolver) simpleAttributeEnd(ends [2]*End) *End {
	var simple *End

	for _, e := range ends {
		if e.Type.HasStereotype(r.config.SimpleAttributeStereotype) {
			simple = e
		}
	}

	return simple
}

// ClassifyEnd decides the role of an end. simple is the association's
// simple-attribute end, or nil. The checks run in priority order, so exactly
// one classification applies.
func ClassifyEnd(e, simple *End, derives func(qualified string) bool) Classification {
	switch {
	case !e.Navigable:
		return NonNavigable
	case simple != nil:
		return SimpleAttribute
	case e.Redefines != "":
		return Redefinition
	case e.Derived || derives(e.Qualified()):
		return DerivedUnionMember
	default:
		return PlainAssociation
	}
}

func (r *Resolver) classifyEnd(head, tail, simple *End) error {
	head.Classification = ClassifyEnd(head, simple, r.policy.Derives)

	switch head.Classification {
	case NonNavigable:
		// Only supplies type and multiplicity for the opposite end.
	case SimpleAttribute:
		if head != simple {
			break
		}

		className := tail.Type.Name
		r.plan.comment(fmt.Sprintf("'%s.%s' is a simple attribute", className, head.Name))
		r.plan.Diagnostics.AddInfo(CodeSimpleAttribute, "rewritten as a simple attribute",
			head.Property.ID, className+"."+head.Name)

		r.plan.Attributes = append(r.plan.Attributes, Attribute{
			PropertyID:   head.Property.ID,
			ClassName:    className,
			Name:         head.Name,
			Type:         "string",
			Multiplicity: head.Multiplicity,
			Source:       AttributeSimple,
		})
		head.Property.Written = true
		tail.Property.Written = true
	case Redefinition:
		r.plan.Redefinitions = append(r.plan.Redefinitions, head)
		msg := fmt.Sprintf("redefining %s -> %s", head.Redefines, head.Qualified())
		r.plan.comment(msg)
		r.plan.Diagnostics.AddInfo(CodeRedefine, msg, head.Property.ID, head.Qualified())
	case DerivedUnionMember:
		if existing, ok := r.unions[head.Name]; ok {
			return errors.Wrapf(ErrDuplicateDerivedUnion,
				"%s is already in derived union set in class %s", head.Qualified(), existing.ClassName)
		}

		u := &DerivedUnion{End: head, Union: []*End{}}
		r.unions[head.Name] = u
		r.plan.DerivedUnions = append(r.plan.DerivedUnions, u)
		head.Property.Written = false
	case PlainAssociation:
		r.plan.Associations = append(r.plan.Associations, AssociationPair{End: head, Opposite: tail})
	}

	return nil
}

// ParseTags reads the subsets and redefines slots of the applied stereotypes.
// Subsets is a comma separated list; all whitespace is removed from both
// values and empty subset names are dropped.
func ParseTags(g *element.Graph, stereotypes []*element.Element) Tags {
	var tags Tags

	for _, st := range stereotypes {
		for _, slot := range g.Resolve(st, "slot") {
			feature := g.ResolveOne(slot, "definingFeature")
			if feature == nil {
				continue
			}

			value := stripSpace(slot.Str("value"))

			switch feature.Name() {
			case "subsets":
				tags.Subsets = nil
				for _, s := range strings.Split(value, ",") {
					if s != "" {
						tags.Subsets = append(tags.Subsets, s)
					}
				}
			case "redefines":
				tags.Redefines = value
			}
		}
	}

	return tags
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
