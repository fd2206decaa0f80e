package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uml-generator/internal/element"
)

func TestBuildGeneralizations(t *testing.T) {
	b := newModelBuilder(t)
	base := b.class("Base")
	left := b.class("Left")
	right := b.class("Right")
	enum := b.class("ColorKind")
	b.generalize(left, base)
	b.generalize(right, base)
	b.generalize(right, enum)

	m := Classify(b.g, DefaultConfig())
	plan := newPlan(m)
	BuildGeneralizations(m, plan)

	require.Len(t, m.Classes[base].Specialization, 2)
	assert.Same(t, m.Classes[left], m.Classes[base].Specialization[0])
	assert.Same(t, m.Classes[right], m.Classes[base].Specialization[1])
	assert.Equal(t, []string{"Base"}, classNames(m.Classes[left].Generalization))
	assert.Equal(t, []string{"Base"}, classNames(m.Classes[right].Generalization))

	warnings := plan.Diagnostics.WithCode(CodeUnknownClass)
	require.Len(t, warnings, 1, "a generalization to an enumeration does not link two classes")
}

func TestBuildGeneralizationsInverse(t *testing.T) {
	b := newModelBuilder(t)
	ids := []string{b.class("A"), b.class("B"), b.class("C"), b.class("D")}
	b.generalize(ids[1], ids[0])
	b.generalize(ids[2], ids[0])
	b.generalize(ids[3], ids[1])
	b.generalize(ids[3], ids[2])

	m := Classify(b.g, DefaultConfig())
	BuildGeneralizations(m, newPlan(m))

	for _, c := range m.Classes {
		for _, g := range c.Generalization {
			assert.Contains(t, g.Specialization, c, "%s -> %s", c.Name, g.Name)
		}

		for _, s := range c.Specialization {
			assert.Contains(t, s.Generalization, c, "%s <- %s", c.Name, s.Name)
		}
	}
}

func TestPropagateStereotypes(t *testing.T) {
	b := newModelBuilder(t)
	value := b.class("Value")
	b.stereotype(value, "SimpleAttribute")
	text := b.class("Text")
	rich := b.class("RichText")
	other := b.class("Other")
	b.generalize(text, value)
	b.generalize(rich, text)

	m := Classify(b.g, DefaultConfig())
	plan := newPlan(m)
	BuildGeneralizations(m, plan)
	require.NoError(t, PropagateStereotypes(m, plan))

	assert.Equal(t, "SimpleAttribute", m.Classes[value].StereotypeName)
	assert.Equal(t, "SimpleAttribute", m.Classes[text].StereotypeName)
	assert.Equal(t, "SimpleAttribute", m.Classes[rich].StereotypeName)
	assert.Empty(t, m.Classes[other].StereotypeName)

	assert.Equal(t, []string{
		"class 'Value' has been stereotyped as 'SimpleAttribute'",
		"class 'Text' has been stereotyped as 'SimpleAttribute' too",
		"class 'RichText' has been stereotyped as 'SimpleAttribute' too",
	}, plan.Comments)
}

func TestPropagateStereotypesDiamond(t *testing.T) {
	b := newModelBuilder(t)
	top := b.class("Top")
	b.stereotype(top, "Marker")
	left := b.class("Left")
	right := b.class("Right")
	bottom := b.class("Bottom")
	b.generalize(left, top)
	b.generalize(right, top)
	b.generalize(bottom, left)
	b.generalize(bottom, right)

	m := Classify(b.g, DefaultConfig())
	plan := newPlan(m)
	BuildGeneralizations(m, plan)
	require.NoError(t, PropagateStereotypes(m, plan))

	assert.Equal(t, "Marker", m.Classes[bottom].StereotypeName)
	assert.Len(t, plan.Comments, 4, "each class is tagged once")
}

func TestPropagateStereotypesIdempotent(t *testing.T) {
	b := newModelBuilder(t)
	base := b.class("Base")
	b.stereotype(base, "Marker")
	child := b.class("Child")
	b.generalize(child, base)

	m := Classify(b.g, DefaultConfig())
	plan := newPlan(m)
	BuildGeneralizations(m, plan)
	require.NoError(t, PropagateStereotypes(m, plan))

	first := map[string]string{}
	for id, c := range m.Classes {
		first[id] = c.StereotypeName
	}

	require.NoError(t, PropagateStereotypes(m, newPlan(m)))

	for id, c := range m.Classes {
		assert.Equal(t, first[id], c.StereotypeName)
	}
}

func TestPropagateStereotypesCycle(t *testing.T) {
	b := newModelBuilder(t)
	a := b.class("A")
	b.stereotype(a, "Marker")
	c := b.class("B")
	b.generalize(c, a)
	b.generalize(a, c)

	m := Classify(b.g, DefaultConfig())
	plan := newPlan(m)
	BuildGeneralizations(m, plan)

	err := PropagateStereotypes(m, plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGeneralizationCycle)
}

func TestPropagateStereotypesWithoutClassifier(t *testing.T) {
	b := newModelBuilder(t)
	box := b.class("Box")
	inst := b.add(element.TypeInstanceSpecification, nil)
	b.g.Get(box).Set("appliedStereotype", element.RefList(inst))

	m := Classify(b.g, DefaultConfig())
	plan := newPlan(m)
	require.NoError(t, PropagateStereotypes(m, plan))

	assert.Empty(t, m.Classes[box].StereotypeName)
	assert.Len(t, plan.Diagnostics.WithCode(CodeUnknownStereotype), 1)
}
