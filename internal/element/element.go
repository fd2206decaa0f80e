package element

import (
	"strings"

	"uml-generator/internal/common"
)

// Type tags the resolver cares about. The parser may produce any other tag.
const (
	TypeClass                 = "Class"
	TypeAssociation           = "Association"
	TypeProperty              = "Property"
	TypeGeneralization        = "Generalization"
	TypeOperation             = "Operation"
	TypeExtension             = "Extension"
	TypeEnumeration           = "Enumeration"
	TypeInstanceSpecification = "InstanceSpecification"
	TypeSlot                  = "Slot"
	TypeStereotype            = "Stereotype"
)

// FieldKind describes what a Field holds.
type FieldKind int

const (
	FieldAbsent FieldKind = iota
	FieldScalar
	FieldRef
	FieldRefList
)

// String returns a human-readable kind name.
func (k FieldKind) String() string {
	switch k {
	case FieldAbsent:
		return "absent"
	case FieldScalar:
		return "scalar"
	case FieldRef:
		return "ref"
	case FieldRefList:
		return "reflist"
	default:
		return common.UnknownStr
	}
}

// Field is a single named value of an element.
type Field struct {
	Kind FieldKind
	// Value holds the scalar text for FieldScalar.
	Value string
	// Refs holds the referenced ids for FieldRef (one entry) and FieldRefList.
	Refs []string
}

// Scalar creates a scalar field.
func Scalar(v string) Field {
	return Field{Kind: FieldScalar, Value: v}
}

// Ref creates a single reference field.
func Ref(id string) Field {
	return Field{Kind: FieldRef, Refs: []string{id}}
}

// RefList creates a reference list field.
func RefList(ids ...string) Field {
	return Field{Kind: FieldRefList, Refs: ids}
}

// IsAbsent reports whether the field was not present on the element.
func (f Field) IsAbsent() bool {
	return f.Kind == FieldAbsent
}

// Element is one node of the parsed model.
type Element struct {
	ID   string
	Type string

	fields   map[string]Field
	order    []string
	resolved map[string][]*Element
}

// New creates an empty element.
func New(id, typ string) *Element {
	return &Element{
		ID:     id,
		Type:   typ,
		fields: make(map[string]Field),
	}
}

// Set stores a field value, keeping first-set order for Fields.
func (e *Element) Set(name string, f Field) {
	if _, ok := e.fields[name]; !ok {
		e.order = append(e.order, name)
	}

	e.fields[name] = f
	delete(e.resolved, name)
}

// Field returns the named field, or the zero Field when absent.
func (e *Element) Field(name string) Field {
	return Lookup(e, name)
}

// Fields returns the field names in the order they were set.
func (e *Element) Fields() []string {
	return append([]string(nil), e.order...)
}

// Has reports whether the named field is present.
func (e *Element) Has(name string) bool {
	return !Lookup(e, name).IsAbsent()
}

// Str returns the scalar value of a field, or "" when absent or not scalar.
func (e *Element) Str(name string) string {
	f := Lookup(e, name)
	if f.Kind != FieldScalar {
		return ""
	}

	return f.Value
}

// Bool interprets a scalar field as a boolean. "1" and "true" are true.
func (e *Element) Bool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(e.Str(name))) {
	case "1", "true":
		return true
	default:
		return false
	}
}

// RefID returns the first referenced id of a field, or "".
func (e *Element) RefID(name string) string {
	f := Lookup(e, name)
	if len(f.Refs) == 0 {
		return ""
	}

	return f.Refs[0]
}

// RefIDs returns the referenced ids of a field.
func (e *Element) RefIDs(name string) []string {
	return Lookup(e, name).Refs
}

// Name is shorthand for Str("name").
func (e *Element) Name() string {
	return e.Str("name")
}

// Lookup is the one safe field accessor. A nil element or an unknown field
// yields the zero Field.
func Lookup(e *Element, name string) Field {
	if e == nil || e.fields == nil {
		return Field{}
	}

	return e.fields[name]
}
