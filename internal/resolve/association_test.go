package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uml-generator/internal/element"
)

func endByName(t *testing.T, p *Plan, qualified string) *End {
	t.Helper()

	for _, e := range p.Ends {
		if e.Navigable && e.Qualified() == qualified {
			return e
		}
	}

	require.Failf(t, "end not found", "no navigable end %s", qualified)

	return nil
}

func TestResolveSimpleAttribute(t *testing.T) {
	b := newModelBuilder(t)
	box := b.class("Box")
	color := b.class("Color")
	b.stereotype(color, "SimpleAttribute")
	colorEnd, boxEnd := b.association(
		endSpec{name: "color", owner: box, typ: color, upper: "1"},
		endSpec{typ: box},
	)

	plan, err := Resolve(b.g, nil, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, plan.Attributes, 1)
	attr := plan.Attributes[0]
	assert.Equal(t, "Box", attr.ClassName)
	assert.Equal(t, "color", attr.Name)
	assert.Equal(t, "string", attr.Type)
	assert.Equal(t, AttributeSimple, attr.Source)
	assert.Equal(t, colorEnd, attr.PropertyID)

	assert.Empty(t, plan.Associations, "no association is emitted for a simple attribute")

	require.Len(t, plan.Ends, 2)
	assert.Equal(t, SimpleAttribute, plan.Ends[0].Classification)
	assert.Equal(t, NonNavigable, plan.Ends[1].Classification)
	assert.True(t, plan.Model.Properties[colorEnd].Written)
	assert.True(t, plan.Model.Properties[boxEnd].Written)

	for _, c := range plan.Classes {
		assert.NotEqual(t, "Color", c.Name, "SimpleAttribute classes are not generated")
	}

	assert.Contains(t, plan.Comments, "'Box.color' is a simple attribute")
}

func TestResolveCompositeContainment(t *testing.T) {
	b := newModelBuilder(t)
	node := b.class("Node")
	b.association(
		endSpec{name: "children", owner: node, typ: node, aggregation: "composite"},
		endSpec{name: "parent", owner: node, typ: node, upper: "1"},
	)

	plan, err := Resolve(b.g, nil, DefaultConfig())
	require.NoError(t, err)

	children := endByName(t, plan, "Node.children")
	assert.True(t, children.Composite)
	assert.Equal(t, "*", children.Upper)
	assert.Equal(t, "0", children.Lower)
	assert.Equal(t, PlainAssociation, children.Classification)
	assert.Equal(t, "Node", children.OppositeClassName)

	parent := endByName(t, plan, "Node.parent")
	assert.False(t, parent.Composite)
	assert.Equal(t, "1", parent.Lower)
	assert.Equal(t, "1", parent.Upper)

	require.Len(t, plan.Associations, 2)
	assert.Same(t, children, plan.Associations[0].End)
	assert.Same(t, parent, plan.Associations[0].Opposite)
	assert.Same(t, parent, plan.Associations[1].End)
}

func TestResolveRedefinition(t *testing.T) {
	b := newModelBuilder(t)
	shape := b.class("Shape")
	circle := b.class("Circle")
	form := b.class("Form")
	b.generalize(circle, shape)
	b.association(
		endSpec{name: "shape", owner: shape, typ: form},
		endSpec{typ: shape},
	)
	b.association(
		endSpec{name: "outline", owner: circle, typ: form, upper: "1", redefines: " shape "},
		endSpec{typ: circle},
	)

	plan, err := Resolve(b.g, nil, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, plan.Redefinitions, 1)
	r := plan.Redefinitions[0]
	assert.Equal(t, "shape", r.Redefines)
	assert.Equal(t, "Circle", r.ClassName)
	assert.Equal(t, "outline", r.Name)
	assert.Equal(t, Redefinition, r.Classification)

	require.Len(t, plan.Associations, 1, "a redefinition is never a plain association")
	assert.Equal(t, "Shape.shape", plan.Associations[0].End.Qualified())

	notices := plan.Diagnostics.WithCode(CodeRedefine)
	require.Len(t, notices, 1)
	assert.Equal(t, "redefining shape -> Circle.outline", notices[0].Message)
}

func TestResolveDanglingSubset(t *testing.T) {
	b := newModelBuilder(t)
	whole := b.class("Whole")
	part := b.class("Part")
	b.association(
		endSpec{name: "parts", owner: whole, typ: part, subsets: "nonexistentUnion"},
		endSpec{typ: whole},
	)

	plan, err := Resolve(b.g, nil, DefaultConfig())
	require.NoError(t, err)

	got := plan.Diagnostics.WithCode(CodeNotDerivedUnion)
	require.Len(t, got, 1)
	assert.Equal(t, "not a derived union: Whole.nonexistentUnion", got[0].Message)
	assert.False(t, plan.Diagnostics.HasErrors())
}

func TestResolveDerivedUnions(t *testing.T) {
	b := newModelBuilder(t)
	elem := b.class("Element")
	pkg := b.class("Package")
	b.generalize(pkg, elem)
	b.association(
		endSpec{name: "ownedElement", owner: elem, typ: elem, derived: true},
		endSpec{name: "owner", owner: elem, typ: elem, upper: "1", derived: true},
	)
	b.association(
		endSpec{name: "packagedElement", owner: pkg, typ: elem, aggregation: "composite", subsets: "ownedElement,\n member"},
		endSpec{name: "owningPackage", owner: elem, typ: pkg, upper: "1", subsets: "owner"},
	)

	plan, err := Resolve(b.g, nil, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, plan.DerivedUnions, 2)
	owned := plan.DerivedUnions[0]
	assert.Equal(t, "ownedElement", owned.Name)
	assert.Equal(t, DerivedUnionMember, owned.Classification)
	require.Len(t, owned.Union, 1)
	assert.Equal(t, "Package.packagedElement", owned.Union[0].Qualified())

	owner := plan.DerivedUnions[1]
	assert.Equal(t, "owner", owner.Name)
	require.Len(t, owner.Union, 1)
	assert.Equal(t, "Element.owningPackage", owner.Union[0].Qualified())

	packaged := endByName(t, plan, "Package.packagedElement")
	assert.Equal(t, []string{"ownedElement", "member"}, packaged.Subsets)
	assert.Equal(t, []string{"ownedElement", "member"}, plan.Tags["Package.packagedElement"].Subsets)

	dangling := plan.Diagnostics.WithCode(CodeNotDerivedUnion)
	require.Len(t, dangling, 1)
	assert.Equal(t, "Package.member", dangling[0].Subject)
}

func TestResolveDanglingSubsetSuggestion(t *testing.T) {
	b := newModelBuilder(t)
	elem := b.class("Element")
	pkg := b.class("Package")
	b.association(
		endSpec{name: "ownedElement", owner: elem, typ: elem, derived: true},
		endSpec{typ: elem},
	)
	b.association(
		endSpec{name: "packagedElement", owner: pkg, typ: elem, subsets: "ownedElemnt"},
		endSpec{typ: pkg},
	)

	plan, err := Resolve(b.g, nil, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, plan.Diagnostics.WithCode(CodeNotDerivedUnion), 1)

	hints := plan.Diagnostics.WithCode(CodeSuggestion)
	require.Len(t, hints, 1)
	assert.Equal(t, "did you mean ownedElement?", hints[0].Message)
	assert.Equal(t, "Package.ownedElemnt", hints[0].Subject)
}

func TestResolveDerivedUnionFreshRegistration(t *testing.T) {
	b := newModelBuilder(t)
	ns := b.class("Namespace")
	b.association(
		endSpec{name: "member", owner: ns, typ: ns, derived: true},
		endSpec{typ: ns},
	)

	plan, err := Resolve(b.g, nil, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, plan.DerivedUnions, 1)
	assert.NotNil(t, plan.DerivedUnions[0].Union)
	assert.Empty(t, plan.DerivedUnions[0].Union)
}

func TestResolveDuplicateDerivedUnion(t *testing.T) {
	b := newModelBuilder(t)
	ns := b.class("Namespace")
	other := b.class("Other")
	b.association(
		endSpec{name: "member", owner: ns, typ: ns, derived: true},
		endSpec{typ: ns},
	)
	b.association(
		endSpec{name: "member", owner: other, typ: ns, derived: true},
		endSpec{typ: other},
	)

	_, err := Resolve(b.g, nil, DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateDerivedUnion)
	assert.Contains(t, err.Error(), "Other.member is already in derived union set in class Namespace")
}

func TestResolveDerivedByPolicy(t *testing.T) {
	b := newModelBuilder(t)
	ns := b.class("Namespace")
	b.association(
		endSpec{name: "member", owner: ns, typ: ns},
		endSpec{typ: ns},
	)

	plan, err := Resolve(b.g, derives(t, "Namespace.member"), DefaultConfig())
	require.NoError(t, err)

	require.Len(t, plan.DerivedUnions, 1)
	assert.Equal(t, "member", plan.DerivedUnions[0].Name)
	assert.Empty(t, plan.Associations)
}

func TestResolveUnnamedNavigableEnd(t *testing.T) {
	b := newModelBuilder(t)
	box := b.class("Box")
	endID, _ := b.association(
		endSpec{owner: box, typ: box},
		endSpec{typ: box},
	)

	_, err := Resolve(b.g, nil, DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnnamedEnd)
	assert.Contains(t, err.Error(), endID)
	assert.Contains(t, err.Error(), "Box")
}

func TestResolveSkipsAssociationToMetaclass(t *testing.T) {
	b := newModelBuilder(t)
	box := b.class("Box")
	meta := b.class("Class")
	st := b.add("Stereotype", nil)
	b.extension(st, meta)
	b.association(
		endSpec{name: "base", owner: box, typ: meta},
		endSpec{typ: box},
	)

	plan, err := Resolve(b.g, nil, DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, plan.Associations)
	assert.Empty(t, plan.Ends)
	assert.Len(t, plan.Diagnostics.WithCode(CodeUnknownClass), 1)
}

func TestResolveSkipsMalformedAssociations(t *testing.T) {
	b := newModelBuilder(t)
	box := b.class("Box")
	end := b.add(element.TypeProperty, map[string]element.Field{
		"name": element.Scalar("lid"), "class_": element.Ref(box), "type": element.Ref(box),
	})
	b.add(element.TypeAssociation, map[string]element.Field{"memberEnd": element.RefList(end)})
	b.add(element.TypeAssociation, map[string]element.Field{"memberEnd": element.RefList(end, box)})

	plan, err := Resolve(b.g, nil, DefaultConfig())
	require.NoError(t, err)

	bad := plan.Diagnostics.WithCode(CodeBadAssociation)
	require.Len(t, bad, 2)
	assert.Contains(t, bad[0].Message, "1 resolvable member ends")
	assert.Contains(t, bad[1].Message, "is not a property")
	assert.Empty(t, plan.Ends)
}

func TestClassifyEndPriority(t *testing.T) {
	t.Parallel()

	never := func(string) bool { return false }
	always := func(string) bool { return true }
	simple := &End{Navigable: true}

	tests := []struct {
		name    string
		end     *End
		simple  *End
		derives func(string) bool
		want    Classification
	}{
		{"non navigable wins", &End{Redefines: "x", Derived: true}, simple, always, NonNavigable},
		{"simple attribute", &End{Navigable: true, Redefines: "x", Derived: true}, simple, always, SimpleAttribute},
		{"redefinition before derived", &End{Navigable: true, Redefines: "x", Derived: true}, nil, always, Redefinition},
		{"derived flag", &End{Navigable: true, Derived: true}, nil, never, DerivedUnionMember},
		{"derived by policy", &End{Navigable: true}, nil, always, DerivedUnionMember},
		{"plain", &End{Navigable: true}, nil, never, PlainAssociation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ClassifyEnd(tt.end, tt.simple, tt.derives))
		})
	}
}

func TestClassificationIsTotalAndExclusive(t *testing.T) {
	b := newModelBuilder(t)
	elem := b.class("Element")
	shape := b.class("Shape")
	circle := b.class("Circle")
	color := b.class("Color")
	b.stereotype(color, "SimpleAttribute")
	b.generalize(circle, shape)

	b.association(endSpec{name: "ownedElement", owner: elem, typ: elem, derived: true}, endSpec{typ: elem})
	b.association(endSpec{name: "color", owner: shape, typ: color}, endSpec{name: "shapes", owner: color, typ: shape})
	b.association(endSpec{name: "parts", owner: shape, typ: elem, subsets: "ownedElement"}, endSpec{name: "whole", owner: elem, typ: shape, upper: "1"})
	b.association(endSpec{name: "parts", owner: circle, typ: elem, redefines: "parts"}, endSpec{typ: circle})

	plan, err := Resolve(b.g, nil, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, plan.Ends, 8)

	count := func(e *End) map[Classification]int {
		seen := map[Classification]int{}

		for _, a := range plan.Associations {
			if a.End == e {
				seen[PlainAssociation]++
			}
		}

		for _, r := range plan.Redefinitions {
			if r == e {
				seen[Redefinition]++
			}
		}

		for _, u := range plan.DerivedUnions {
			if u.End == e {
				seen[DerivedUnionMember]++
			}
		}

		for _, a := range plan.Attributes {
			if a.Source == AttributeSimple && a.PropertyID == e.Property.ID {
				seen[SimpleAttribute]++
			}
		}

		return seen
	}

	for _, e := range plan.Ends {
		seen := count(e)

		switch e.Classification {
		case NonNavigable:
			assert.Empty(t, seen, e.Property.ID)
		case SimpleAttribute:
			// Only the end typed by the value class produces the attribute.
			assert.LessOrEqual(t, len(seen), 1, e.Qualified())
			for c := range seen {
				assert.Equal(t, SimpleAttribute, c, e.Qualified())
			}
		default:
			assert.Equal(t, map[Classification]int{e.Classification: 1}, seen, e.Qualified())
		}
	}

	assert.Equal(t, "Shape.parts", plan.DerivedUnions[0].Union[0].Qualified())
}

func TestNormalizeMultiplicity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lower, upper string
		want         Multiplicity
	}{
		{"", "", Multiplicity{Lower: "0", Upper: "*"}},
		{"", "1", Multiplicity{Lower: "1", Upper: "1"}},
		{"0", "1", Multiplicity{Lower: "0", Upper: "1"}},
		{"1", "*", Multiplicity{Lower: "1", Upper: "*"}},
		{"*", "*", Multiplicity{Lower: "0", Upper: "*"}},
		{"", "3", Multiplicity{Lower: "3", Upper: "3"}},
	}

	for _, tt := range tests {
		got := NormalizeMultiplicity(tt.lower, tt.upper)
		assert.Equal(t, tt.want, got, "lower=%q upper=%q", tt.lower, tt.upper)
	}

	assert.True(t, Multiplicity{Upper: "*"}.IsMany())
	assert.True(t, Multiplicity{Upper: "3"}.IsMany())
	assert.False(t, Multiplicity{Upper: "1"}.IsMany())
}

func TestParseTags(t *testing.T) {
	b := newModelBuilder(t)
	box := b.class("Box")
	endID, _ := b.association(
		endSpec{name: "items", owner: box, typ: box, subsets: " a ,\r\nb,, c ", redefines: "\tother\n"},
		endSpec{typ: box},
	)

	m := Classify(b.g, DefaultConfig())
	tags := ParseTags(b.g, m.Properties[endID].Stereotypes)

	assert.Equal(t, []string{"a", "b", "c"}, tags.Subsets)
	assert.Equal(t, "other", tags.Redefines)

	assert.Equal(t, Tags{}, ParseTags(b.g, nil))
}

func TestClassificationString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NonNavigable", NonNavigable.String())
	assert.Equal(t, "DerivedUnionMember", DerivedUnionMember.String())
	assert.Equal(t, "PlainAssociation", PlainAssociation.String())
	assert.Equal(t, "Classification(9)", Classification(9).String())
}
