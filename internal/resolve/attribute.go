package resolve

import (
	"strings"

	"uml-generator/internal/uml"
)

// scalarTypes maps model primitive type names to generated scalar types.
var scalarTypes = map[string]string{
	"string":           "string",
	"str":              "string",
	"integer":          "int",
	"int":              "int",
	"boolean":          "bool",
	"bool":             "bool",
	"real":             "float64",
	"float":            "float64",
	"unlimitednatural": "string",
}

// ScalarType maps a model type value to a generated scalar type. Unknown
// names map to "string".
func ScalarType(typeValue string) string {
	if t, ok := scalarTypes[strings.ToLower(strings.TrimSpace(typeValue))]; ok {
		return t
	}

	return "string"
}

// resolveAttributes resolves the owned attributes of retained classes that
// are not association ends. Attributes the policy declares derived are held
// back and returned.
func (r *Resolver) resolveAttributes() []Attribute {
	var derived []Attribute

	for _, c := range r.plan.Classes {
		for _, id := range c.OwnedAttribute {
			p := r.model.Properties[id]
			if p == nil || p.AssociationID != "" {
				continue
			}

			a := r.attribute(c, p)
			if r.policy.Derives(a.Qualified()) {
				a.Source = AttributeDerived
				derived = append(derived, a)

				continue
			}

			r.plan.Attributes = append(r.plan.Attributes, a)
		}
	}

	return derived
}

func (r *Resolver) attribute(c *uml.Class, p *uml.Property) Attribute {
	a := Attribute{
		PropertyID:   p.ID,
		ClassName:    c.Name,
		Name:         p.Name,
		Multiplicity: attributeMultiplicity(p),
		Source:       AttributePlain,
	}

	if enum := r.enumerationFor(p); enum != nil {
		a.Type = enum.Name
		a.Enumeration = enum
	} else {
		a.Type = ScalarType(p.TypeValue)
	}

	if p.DefaultValue != "" {
		def := p.DefaultValue
		a.Default = &def
	}

	if ov, ok := r.policy.Attribute(a.Qualified()); ok {
		if ov.Type != "" {
			a.Type = ov.Type
			a.Enumeration = nil
		}

		if ov.Default != nil {
			a.Default = ov.Default
		}
	}

	return a
}

// attributeMultiplicity defaults a plain attribute to an optional single value.
func attributeMultiplicity(p *uml.Property) Multiplicity {
	upper := p.UpperValue
	if upper == "" {
		upper = "1"
	}

	lower := p.LowerValue
	if lower == "" || lower == "*" {
		lower = "0"
	}

	return Multiplicity{Lower: lower, Upper: upper}
}

// enumerationFor returns the enumeration typing p, either by reference or by
// type value name.
func (r *Resolver) enumerationFor(p *uml.Property) *uml.Enumeration {
	if enum, ok := r.model.Enumerations[p.TypeID]; ok {
		return enum
	}

	if p.TypeValue == "" {
		return nil
	}

	for _, enum := range r.model.OrderedEnumerations() {
		if enum.Name == p.TypeValue {
			return enum
		}
	}

	return nil
}

// resolveOperations lists the owned operations of retained classes.
func (r *Resolver) resolveOperations() {
	for _, c := range r.plan.Classes {
		for _, id := range c.OwnedOperation {
			o := r.model.Operations[id]
			if o == nil {
				continue
			}

			r.plan.Operations = append(r.plan.Operations, Operation{
				ID:        o.ID,
				ClassName: c.Name,
				Name:      o.Name,
			})
		}
	}
}
