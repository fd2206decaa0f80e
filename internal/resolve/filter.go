package resolve

import (
	"maps"

	"uml-generator/internal/element"
	"uml-generator/internal/uml"
)

// FilterMetaclasses returns classes without the metaclasses that profile
// Extensions attach to.
//
// For every Extension the member ends and their types are resolved. Each
// navigable end (one with an owning class) names a metaclass through its
// type. When no end is navigable, the first end with a type is still taken:
// Gaphor profiles often leave the metaclass end unowned, and keeping such a
// metaclass would generate it as a model class. Only an Extension without
// any typed end leaves the set unchanged.
func FilterMetaclasses(m *uml.Model, classes map[string]*uml.Class) map[string]*uml.Class {
	out := maps.Clone(classes)

	for _, id := range m.ExtensionOrder {
		for _, metaclass := range extensionTargets(m.Graph, m.Extensions[id]) {
			delete(out, metaclass.ID)
		}
	}

	return out
}

func extensionTargets(g *element.Graph, ext *uml.Extension) []*element.Element {
	var (
		navigable []*element.Element
		firstType *element.Element
	)

	for _, end := range g.Resolve(ext.Element, "memberEnd") {
		t := g.ResolveOne(end, "type")
		if t == nil {
			continue
		}

		if firstType == nil {
			firstType = t
		}

		if end.Has("class_") {
			navigable = append(navigable, t)
		}
	}

	if len(navigable) > 0 {
		return navigable
	}

	if firstType != nil {
		return []*element.Element{firstType}
	}

	return nil
}

// FilterSimpleAttributes returns classes without those tagged with the
// simple-attribute stereotype. Such classes model scalar values.
func FilterSimpleAttributes(classes map[string]*uml.Class, stereotype string) map[string]*uml.Class {
	out := make(map[string]*uml.Class, len(classes))

	for id, c := range classes {
		if c.HasStereotype(stereotype) {
			continue
		}

		out[id] = c
	}

	return out
}

// EnrichEnumerations fills each enumeration's literal list from its owned
// attribute names, keeping model order.
func EnrichEnumerations(m *uml.Model) {
	for _, enum := range m.OrderedEnumerations() {
		values := make([]string, 0, len(enum.OwnedAttribute))

		for _, id := range enum.OwnedAttribute {
			if p, ok := m.Properties[id]; ok {
				values = append(values, p.Name)
				continue
			}

			if e := m.Graph.Get(id); e != nil {
				values = append(values, e.Name())
			}
		}

		enum.Enumerates = values
	}
}
