// Package element provides the generic model element graph produced by the
// model-file parser and consumed by the resolver.
//
// Every element carries a type tag, an identifier and named fields. A field
// is a scalar, a single reference or a reference list. Field lookup never
// fails: an unknown field yields the zero Field, whose kind is FieldAbsent.
//
// Key types:
//   - Element: one parsed node
//   - Field: a scalar, reference or reference list value
//   - Graph: elements by identifier, in document order
//
// Graph.Resolve dereferences a field into the referenced elements and caches
// the result on the element, so later passes read direct links.
package element
