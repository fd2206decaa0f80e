package gen

import (
	"errors"
	"fmt"
	"strconv"

	"uml-generator/internal/common"
	"uml-generator/internal/resolve"
)

// templateData holds all data needed for the model file template.
type templateData struct {
	Header       string
	PackageName  string
	Imports      []importSpec
	Runtime      string
	Comments     []string
	Classes      []classData
	Enumerations []enumerationData
	HasInit      bool
	Properties   []propertyData
	Subsets      []subsetData
	Operations   []operationData
	Skipped      []string
}

type classData struct {
	Ident    string
	Name     string
	Generals []string
}

type enumerationData struct {
	Ident    string
	Name     string
	Literals []string
}

// propertyData is one Add call on a class.
type propertyData struct {
	Class   string
	Expr    string
	Comment string
}

type subsetData struct {
	Union   string
	Members []string
}

type operationData struct {
	Class string
	Name  string
}

// builder tracks the identifiers declared so far while building templateData.
type builder struct {
	runtime string
	classes map[string]string
	enums   map[string]string
	idents  map[string]string
	// declared holds the qualified names of added properties.
	declared map[string]bool
	data     *templateData
}

// buildTemplateData turns the collected descriptors into template data.
func (w *Writer) buildTemplateData(header string) (*templateData, error) {
	runtime := common.PkgAlias(w.config.RuntimeImport)
	if runtime == "" {
		return nil, errors.New("runtime import path is required")
	}

	b := &builder{
		runtime:  runtime,
		classes:  make(map[string]string),
		enums:    make(map[string]string),
		idents:   map[string]string{runtime: "runtime import", "init": "init function"},
		declared: make(map[string]bool),
		data: &templateData{
			Header:      header,
			PackageName: w.config.PackageName,
			Runtime:     runtime,
		},
	}

	if w.config.GenerateComments {
		for _, c := range w.comments {
			b.data.Comments = append(b.data.Comments, commentLine(c))
		}
	}

	if err := b.addClasses(w); err != nil {
		return nil, err
	}

	if err := b.addEnumerations(w); err != nil {
		return nil, err
	}

	for _, a := range w.attributes {
		b.addAttribute(a)
	}

	for _, pair := range w.associations {
		b.addAssociation(pair[0], pair[1])
	}

	for _, r := range w.redefines {
		b.addRedefine(r)
	}

	for _, u := range w.unions {
		b.addDerivedUnion(u)
	}

	for _, u := range w.unions {
		b.addSubsets(u)
	}

	for _, o := range w.operations {
		b.addOperation(o)
	}

	d := b.data
	d.HasInit = len(d.Properties)+len(d.Subsets)+len(d.Operations) > 0

	if len(d.Classes)+len(d.Enumerations) > 0 {
		d.Imports = append(d.Imports, importSpec{Alias: runtime, Path: w.config.RuntimeImport})
	}

	return d, nil
}

func (b *builder) declare(name, what string) (string, error) {
	ident := goIdent(name)
	if prev, ok := b.idents[ident]; ok {
		return "", fmt.Errorf("%s %q and %s share the identifier %s", what, name, prev, ident)
	}

	b.idents[ident] = fmt.Sprintf("%s %q", what, name)

	return ident, nil
}

func (b *builder) addClasses(w *Writer) error {
	order, err := classOrder(w.classes)
	if err != nil {
		return err
	}

	for _, i := range order {
		c := w.classes[i]

		ident, err := b.declare(c.Name, "class")
		if err != nil {
			return err
		}

		b.classes[c.Name] = ident
	}

	for _, i := range order {
		c := w.classes[i]
		cd := classData{Ident: b.classes[c.Name], Name: strconv.Quote(c.Name)}

		for _, g := range c.Generalization {
			if ident, ok := b.classes[g.Name]; ok {
				cd.Generals = append(cd.Generals, ident)
			}
		}

		b.data.Classes = append(b.data.Classes, cd)
	}

	return nil
}

func (b *builder) addEnumerations(w *Writer) error {
	for _, e := range w.enumerations {
		ident, err := b.declare(e.Name, "enumeration")
		if err != nil {
			return err
		}

		b.enums[e.Name] = ident
		ed := enumerationData{Ident: ident, Name: strconv.Quote(e.Name)}

		for _, lit := range e.Enumerates {
			ed.Literals = append(ed.Literals, strconv.Quote(lit))
		}

		b.data.Enumerations = append(b.data.Enumerations, ed)
	}

	return nil
}

func (b *builder) skip(format string, args ...any) {
	b.data.Skipped = append(b.data.Skipped, fmt.Sprintf(format, args...))
}

// add appends an Add call unless the class is not generated or already has a
// property of that name.
func (b *builder) add(className, name, expr, comment string) {
	class, ok := b.classes[className]
	if !ok {
		b.skip("%s.%s: class %s is not generated", className, name, className)
		return
	}

	qualified := className + "." + name
	if b.declared[qualified] {
		b.skip("%s: declared more than once", qualified)
		return
	}

	b.declared[qualified] = true
	b.data.Properties = append(b.data.Properties, propertyData{Class: class, Expr: expr, Comment: comment})
}

func (b *builder) addAttribute(a resolve.Attribute) {
	var opts []string
	if bounds := b.bounds(a.Multiplicity, "1"); bounds != "" {
		opts = append(opts, bounds)
	}

	if a.Default != nil {
		opts = append(opts, b.call("Default", strconv.Quote(*a.Default)))
	}

	if a.Source == resolve.AttributeDerived {
		opts = append(opts, b.call("Derived"))
	}

	var expr string
	if enum, ok := b.enumIdent(a); ok {
		expr = b.call("NewEnumerationAttribute", append([]string{strconv.Quote(a.Name), enum}, opts...)...)
	} else {
		expr = b.call("NewAttribute", append([]string{strconv.Quote(a.Name), strconv.Quote(a.Type)}, opts...)...)
	}

	var comment string
	if a.Source == resolve.AttributeSimple {
		comment = "simple attribute"
	}

	b.add(a.ClassName, a.Name, expr, comment)
}

func (b *builder) enumIdent(a resolve.Attribute) (string, bool) {
	if a.Enumeration == nil {
		return "", false
	}

	ident, ok := b.enums[a.Enumeration.Name]

	return ident, ok
}

func (b *builder) addAssociation(head, tail *resolve.End) {
	typ, ok := b.classes[head.OppositeClassName]
	if !ok {
		b.skip("%s: type %s is not generated", head.Qualified(), head.OppositeClassName)
		return
	}

	opts := b.endOptions(head)
	if tail != nil && tail.Navigable && tail.Name != "" {
		opts = append(opts, b.call("Opposite", strconv.Quote(tail.Name)))
	}

	expr := b.call("NewAssociation", append([]string{strconv.Quote(head.Name), typ}, opts...)...)
	b.add(head.ClassName, head.Name, expr, "")
}

func (b *builder) addRedefine(e *resolve.End) {
	typ, ok := b.classes[e.OppositeClassName]
	if !ok {
		b.skip("%s: type %s is not generated", e.Qualified(), e.OppositeClassName)
		return
	}

	args := []string{strconv.Quote(e.Name), typ, strconv.Quote(e.Redefines)}
	expr := b.call("NewRedefine", append(args, b.endOptions(e)...)...)
	b.add(e.ClassName, e.Name, expr, "")
}

func (b *builder) addDerivedUnion(u *resolve.DerivedUnion) {
	typ, ok := b.classes[u.OppositeClassName]
	if !ok {
		b.skip("%s: type %s is not generated", u.Qualified(), u.OppositeClassName)
		return
	}

	expr := b.call("NewDerivedUnion", append([]string{strconv.Quote(u.Name), typ}, b.endOptions(u.End)...)...)
	b.add(u.ClassName, u.Name, expr, "")
}

// addSubsets links the declared members of a declared union.
func (b *builder) addSubsets(u *resolve.DerivedUnion) {
	if !b.declared[u.Qualified()] {
		return
	}

	sd := subsetData{Union: b.lookup(u.End)}

	for _, m := range u.Union {
		if !b.declared[m.Qualified()] {
			b.skip("%s: member of %s is not generated", m.Qualified(), u.Qualified())
			continue
		}

		sd.Members = append(sd.Members, b.lookup(m))
	}

	if len(sd.Members) > 0 {
		b.data.Subsets = append(b.data.Subsets, sd)
	}
}

func (b *builder) addOperation(o resolve.Operation) {
	class, ok := b.classes[o.ClassName]
	if !ok {
		b.skip("%s.%s(): class %s is not generated", o.ClassName, o.Name, o.ClassName)
		return
	}

	b.data.Operations = append(b.data.Operations, operationData{Class: class, Name: strconv.Quote(o.Name)})
}

// lookup renders a property lookup on the end's owning class.
func (b *builder) lookup(e *resolve.End) string {
	return fmt.Sprintf("%s.Property(%s)", b.classes[e.ClassName], strconv.Quote(e.Name))
}

// endOptions renders the options shared by association-like ends. The
// runtime defaults ends to 0..*.
func (b *builder) endOptions(e *resolve.End) []string {
	var opts []string
	if bounds := b.bounds(e.Multiplicity, "*"); bounds != "" {
		opts = append(opts, bounds)
	}

	if e.Composite {
		opts = append(opts, b.call("Composite"))
	}

	return opts
}

// bounds renders a Bounds option, or "" when m matches the runtime default
// of lower 0 and the given upper bound.
func (b *builder) bounds(m resolve.Multiplicity, defaultUpper string) string {
	if m.Lower == "0" && m.Upper == defaultUpper {
		return ""
	}

	return b.call("Bounds", strconv.Quote(m.Lower), strconv.Quote(m.Upper))
}
