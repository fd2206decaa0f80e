package resolve

import (
	"fmt"

	"github.com/pkg/errors"

	"uml-generator/internal/common"
	"uml-generator/internal/uml"
)

// BuildGeneralizations links every generalization's specific and general
// classes in both directions. Generalizations that name a non-class are
// skipped with a warning.
func BuildGeneralizations(m *uml.Model, plan *Plan) {
	for _, id := range m.GeneralizationOrder {
		g := m.Generalizations[id]

		specific, general := m.Classes[g.Specific], m.Classes[g.General]
		if specific == nil || general == nil {
			plan.Diagnostics.AddWarning(CodeUnknownClass,
				fmt.Sprintf("generalization %s -> %s does not link two classes", g.Specific, g.General),
				g.ID, "")

			continue
		}

		specific.Generalization = append(specific.Generalization, general)
		general.Specialization = append(general.Specialization, specific)
	}
}

// PropagateStereotypes tags every class carrying an applied stereotype, and
// all classes below it, with the stereotype's name.
//
// The tag comes from Class.appliedStereotype[0].classifier[0].name. The walk
// over specializations visits each class once per root; reaching a class that
// is still on the current path is reported as ErrGeneralizationCycle.
func PropagateStereotypes(m *uml.Model, plan *Plan) error {
	for _, c := range m.OrderedClasses(m.Classes) {
		if common.IsEmpty(c.AppliedStereotype) {
			continue
		}

		name, ok := stereotypeName(m, c)
		if !ok {
			plan.Diagnostics.AddWarning(CodeUnknownStereotype,
				fmt.Sprintf("class '%s' has an applied stereotype without classifier", c.Name),
				c.ID, c.Name)

			continue
		}

		c.StereotypeName = name
		plan.comment(fmt.Sprintf("class '%s' has been stereotyped as '%s'", c.Name, name))
		plan.Diagnostics.AddInfo(CodeStereotype, "stereotyped as '"+name+"'", c.ID, c.Name)

		visited := map[*uml.Class]bool{c: true}
		onPath := map[*uml.Class]bool{}

		if err := tagChildren(c, name, visited, onPath, plan); err != nil {
			return err
		}
	}

	return nil
}

func stereotypeName(m *uml.Model, c *uml.Class) (string, bool) {
	instance := m.Graph.ResolveOne(c.Element, "appliedStereotype")
	if instance == nil {
		return "", false
	}

	st := m.Graph.ResolveOne(instance, "classifier")
	if st == nil || st.Name() == "" {
		return "", false
	}

	return st.Name(), true
}

func tagChildren(c *uml.Class, name string, visited, onPath map[*uml.Class]bool, plan *Plan) error {
	onPath[c] = true
	defer delete(onPath, c)

	for _, child := range c.Specialization {
		if onPath[child] {
			return errors.Wrapf(ErrGeneralizationCycle,
				"class '%s' specializes itself through '%s'", child.Name, c.Name)
		}

		if visited[child] {
			continue
		}

		visited[child] = true
		child.StereotypeName = name
		plan.comment(fmt.Sprintf("class '%s' has been stereotyped as '%s' too", child.Name, name))

		if err := tagChildren(child, name, visited, onPath, plan); err != nil {
			return err
		}
	}

	return nil
}
