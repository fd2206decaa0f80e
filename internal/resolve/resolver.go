package resolve

import (
	"github.com/pkg/errors"

	"uml-generator/internal/element"
	"uml-generator/internal/override"
	"uml-generator/internal/uml"
)

// Resolver performs the resolution pipeline.
type Resolver struct {
	graph  *element.Graph
	policy Policy
	config Config

	model *uml.Model
	plan  *Plan
	// allClasses is the class set after metaclass removal; association ends
	// are looked up here so SimpleAttribute classes are still visible.
	allClasses map[string]*uml.Class
	// classes is the retained class set.
	classes map[string]*uml.Class
	// unions holds the derived unions, indexed by name instead of id.
	unions map[string]*DerivedUnion
	err    error
}

// NewResolver creates a new Resolver. A nil policy declares nothing derived.
func NewResolver(graph *element.Graph, policy Policy, config Config) *Resolver {
	if policy == nil {
		policy = (*override.File)(nil)
	}

	return &Resolver{
		graph:  graph,
		policy: policy,
		config: config,
		unions: make(map[string]*DerivedUnion),
	}
}

// Resolve runs the full resolution pipeline and returns a Plan.
// A Resolver resolves once; later calls return the first plan.
func (r *Resolver) Resolve() (*Plan, error) {
	if r.plan != nil {
		return r.plan, r.err
	}

	if r.graph == nil {
		return nil, errors.New("model graph is required")
	}

	r.model = Classify(r.graph, r.config)
	r.plan = newPlan(r.model)
	r.err = r.run()

	return r.plan, r.err
}

func (r *Resolver) run() error {
	BuildGeneralizations(r.model, r.plan)

	if err := PropagateStereotypes(r.model, r.plan); err != nil {
		return err
	}

	r.allClasses = FilterMetaclasses(r.model, r.model.Classes)
	r.classes = FilterSimpleAttributes(r.allClasses, r.config.SimpleAttributeStereotype)
	r.plan.Classes = r.model.OrderedClasses(r.classes)

	EnrichEnumerations(r.model)
	r.plan.Enumerations = r.model.OrderedEnumerations()

	derived := r.resolveAttributes()

	if err := r.resolveAssociations(); err != nil {
		return err
	}

	r.aggregateUnions()

	r.plan.Attributes = append(r.plan.Attributes, derived...)

	r.resolveOperations()

	if r.config.StrictMode {
		return r.promoteWarnings()
	}

	return nil
}

// promoteWarnings turns every warning into an error diagnostic and reports
// them as one error.
func (r *Resolver) promoteWarnings() error {
	d := &r.plan.Diagnostics
	for _, w := range d.Warnings {
		d.AddError(w.Code, w.Message, w.ElementID, w.Subject)
	}

	d.Warnings = nil

	if err := d.Error(); err != nil {
		return errors.Wrap(err, "strict mode")
	}

	return nil
}

// Resolve is a convenience wrapper running a new Resolver over g.
func Resolve(g *element.Graph, policy Policy, config Config) (*Plan, error) {
	return NewResolver(g, policy, config).Resolve()
}
