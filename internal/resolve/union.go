package resolve

import (
	"fmt"
	"slices"

	"uml-generator/internal/match"
)

// aggregateUnions links every subsetting end to the derived union it names.
// Only ends whose type is a retained class take part. A subset naming an
// unknown union is a warning, not an error.
func (r *Resolver) aggregateUnions() {
	for _, e := range r.plan.Ends {
		for _, s := range e.Subsets {
			if _, ok := r.classes[e.Property.TypeID]; !ok {
				continue
			}

			u, ok := r.unions[s]
			if !ok {
				subject := e.ClassName + "." + s
				r.plan.Diagnostics.AddWarning(CodeNotDerivedUnion,
					fmt.Sprintf("not a derived union: %s", subject), e.Property.ID, subject)

				if name, ok := match.Suggest(s, r.unionNames()); ok {
					r.plan.Diagnostics.AddInfo(CodeSuggestion,
						fmt.Sprintf("did you mean %s?", name), e.Property.ID, subject)
				}

				continue
			}

			u.Union = append(u.Union, e)
		}
	}
}

func (r *Resolver) unionNames() []string {
	names := make([]string, 0, len(r.unions))
	for name := range r.unions {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
