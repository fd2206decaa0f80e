package resolve

import (
	"strings"

	"uml-generator/internal/element"
	"uml-generator/internal/uml"
)

// Classify partitions the element graph into typed buckets in one pass.
//
// A named Class whose name ends with one of the configured suffixes is an
// enumeration. Unnamed classes are ignored. Properties get their applied
// stereotypes, slots, slot values and defining features resolved here, since
// tag parsing reads them later.
func Classify(g *element.Graph, cfg Config) *uml.Model {
	m := uml.NewModel(g)

	for _, e := range g.Elements() {
		switch e.Type {
		case element.TypeClass:
			name := e.Name()
			if name == "" {
				continue
			}

			if isEnumerationName(name, cfg.EnumerationSuffixes) {
				m.Enumerations[e.ID] = &uml.Enumeration{
					ID:             e.ID,
					Name:           name,
					OwnedAttribute: e.RefIDs("ownedAttribute"),
					Element:        e,
				}
				m.EnumerationOrder = append(m.EnumerationOrder, e.ID)

				continue
			}

			// Metaclasses are removed later on, via the Extension elements.
			m.Classes[e.ID] = &uml.Class{
				ID:                e.ID,
				Name:              name,
				Generalization:    []*uml.Class{},
				Specialization:    []*uml.Class{},
				AppliedStereotype: e.RefIDs("appliedStereotype"),
				OwnedAttribute:    e.RefIDs("ownedAttribute"),
				OwnedOperation:    e.RefIDs("ownedOperation"),
				Element:           e,
			}
			m.ClassOrder = append(m.ClassOrder, e.ID)

		case element.TypeGeneralization:
			m.Generalizations[e.ID] = &uml.Generalization{
				ID:       e.ID,
				Specific: e.RefID("specific"),
				General:  e.RefID("general"),
			}
			m.GeneralizationOrder = append(m.GeneralizationOrder, e.ID)

		case element.TypeAssociation:
			m.Associations[e.ID] = &uml.Association{
				ID:        e.ID,
				MemberEnd: e.RefIDs("memberEnd"),
				Element:   e,
			}
			m.AssociationOrder = append(m.AssociationOrder, e.ID)

		case element.TypeProperty:
			m.Properties[e.ID] = classifyProperty(g, e)
			m.PropertyOrder = append(m.PropertyOrder, e.ID)

		case element.TypeOperation:
			m.Operations[e.ID] = &uml.Operation{
				ID:      e.ID,
				Name:    e.Name(),
				Element: e,
			}

		case element.TypeExtension:
			m.Extensions[e.ID] = &uml.Extension{
				ID:        e.ID,
				MemberEnd: e.RefIDs("memberEnd"),
				Element:   e,
			}
			m.ExtensionOrder = append(m.ExtensionOrder, e.ID)
		}
	}

	return m
}

func isEnumerationName(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if suffix != "" && strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}

func classifyProperty(g *element.Graph, e *element.Element) *uml.Property {
	stereotypes := g.Resolve(e, "appliedStereotype")
	for _, st := range stereotypes {
		for _, slot := range g.Resolve(st, "slot") {
			g.Resolve(slot, "value")
			g.Resolve(slot, "definingFeature")
		}
	}

	return &uml.Property{
		ID:            e.ID,
		Name:          e.Name(),
		ClassID:       e.RefID("class_"),
		TypeID:        e.RefID("type"),
		TypeValue:     e.Str("typeValue"),
		AssociationID: e.RefID("association"),
		LowerValue:    e.Str("lowerValue"),
		UpperValue:    e.Str("upperValue"),
		DefaultValue:  e.Str("defaultValue"),
		Aggregation:   e.Str("aggregation"),
		IsDerived:     e.Bool("isDerived"),
		Stereotypes:   stereotypes,
		Element:       e,
	}
}
