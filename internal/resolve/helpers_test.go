package resolve

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"uml-generator/internal/element"
	"uml-generator/internal/override"
	"uml-generator/internal/uml"
)

// modelBuilder assembles element graphs the way the model parser produces them.
type modelBuilder struct {
	t     *testing.T
	g     *element.Graph
	seq   int
	owned map[string][]string
}

func newModelBuilder(t *testing.T) *modelBuilder {
	t.Helper()

	return &modelBuilder{t: t, g: element.NewGraph(), owned: map[string][]string{}}
}

func (b *modelBuilder) add(typ string, fields map[string]element.Field) string {
	b.t.Helper()

	b.seq++
	id := fmt.Sprintf("%s-%d", typ, b.seq)
	e := element.New(id, typ)

	for name, f := range fields {
		e.Set(name, f)
	}

	require.NoError(b.t, b.g.Add(e))

	return id
}

func (b *modelBuilder) class(name string) string {
	b.t.Helper()

	return b.add(element.TypeClass, map[string]element.Field{"name": element.Scalar(name)})
}

// stereotype creates a stereotype and applies it to the class.
func (b *modelBuilder) stereotype(classID, name string) string {
	b.t.Helper()

	st := b.add(element.TypeStereotype, map[string]element.Field{"name": element.Scalar(name)})
	inst := b.add(element.TypeInstanceSpecification, map[string]element.Field{"classifier": element.RefList(st)})
	b.g.Get(classID).Set("appliedStereotype", element.RefList(inst))

	return st
}

func (b *modelBuilder) generalize(specific, general string) {
	b.t.Helper()

	b.add(element.TypeGeneralization, map[string]element.Field{
		"specific": element.Ref(specific),
		"general":  element.Ref(general),
	})
}

// attribute adds an owned attribute that is not an association end.
func (b *modelBuilder) attribute(classID, name string, extra map[string]element.Field) string {
	b.t.Helper()

	fields := map[string]element.Field{
		"name":   element.Scalar(name),
		"class_": element.Ref(classID),
	}
	for k, v := range extra {
		fields[k] = v
	}

	id := b.add(element.TypeProperty, fields)
	b.own(classID, "ownedAttribute", id)

	return id
}

func (b *modelBuilder) own(classID, field, id string) {
	b.owned[classID+"/"+field] = append(b.owned[classID+"/"+field], id)
	b.g.Get(classID).Set(field, element.RefList(b.owned[classID+"/"+field]...))
}

// endSpec describes one association end.
type endSpec struct {
	name        string
	owner       string // class id, "" for a non-navigable end
	typ         string // class id
	lower       string
	upper       string
	aggregation string
	derived     bool
	subsets     string
	redefines   string
}

// association adds an association with two ends and returns the end ids.
func (b *modelBuilder) association(head, tail endSpec) (string, string) {
	b.t.Helper()

	assoc := b.add(element.TypeAssociation, nil)
	headID := b.end(assoc, head)
	tailID := b.end(assoc, tail)
	b.g.Get(assoc).Set("memberEnd", element.RefList(headID, tailID))

	return headID, tailID
}

func (b *modelBuilder) end(assoc string, es endSpec) string {
	b.t.Helper()

	fields := map[string]element.Field{
		"type":        element.Ref(es.typ),
		"association": element.Ref(assoc),
	}
	if es.name != "" {
		fields["name"] = element.Scalar(es.name)
	}
	if es.owner != "" {
		fields["class_"] = element.Ref(es.owner)
	}
	if es.lower != "" {
		fields["lowerValue"] = element.Scalar(es.lower)
	}
	if es.upper != "" {
		fields["upperValue"] = element.Scalar(es.upper)
	}
	if es.aggregation != "" {
		fields["aggregation"] = element.Scalar(es.aggregation)
	}
	if es.derived {
		fields["isDerived"] = element.Scalar("1")
	}

	var slots []string
	if es.subsets != "" {
		slots = append(slots, b.slot("subsets", es.subsets))
	}
	if es.redefines != "" {
		slots = append(slots, b.slot("redefines", es.redefines))
	}
	if len(slots) > 0 {
		inst := b.add(element.TypeInstanceSpecification, map[string]element.Field{"slot": element.RefList(slots...)})
		fields["appliedStereotype"] = element.RefList(inst)
	}

	id := b.add(element.TypeProperty, fields)
	if es.owner != "" {
		b.own(es.owner, "ownedAttribute", id)
	}

	return id
}

func (b *modelBuilder) slot(feature, value string) string {
	b.t.Helper()

	def := b.add(element.TypeProperty, map[string]element.Field{"name": element.Scalar(feature)})

	return b.add(element.TypeSlot, map[string]element.Field{
		"definingFeature": element.Ref(def),
		"value":           element.Scalar(value),
	})
}

// extension adds a profile extension whose navigable end targets metaclass.
func (b *modelBuilder) extension(stereotypeID, metaclassID string) {
	b.t.Helper()

	ext := b.add(element.TypeExtension, nil)
	extEnd := b.add(element.TypeProperty, map[string]element.Field{"type": element.Ref(stereotypeID)})
	base := b.add(element.TypeProperty, map[string]element.Field{
		"name":   element.Scalar("base_Class"),
		"type":   element.Ref(metaclassID),
		"class_": element.Ref(stereotypeID),
	})
	b.g.Get(ext).Set("memberEnd", element.RefList(extEnd, base))
}

// derives builds an override policy declaring the given properties derived.
func derives(t *testing.T, qualified ...string) *override.File {
	t.Helper()

	f, err := override.Parse([]byte("derives: [" + strings.Join(qualified, ", ") + "]\n"))
	require.NoError(t, err)

	return f
}

func classNames(classes []*uml.Class) []string {
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, c.Name)
	}

	return names
}
