// Package properties is the runtime property system targeted by generated
// model code.
//
// Generated files declare one *Class per model class and one *Enumeration
// per enumeration, then attach properties to classes in an init function:
//
//	var (
//		Element = properties.NewClass("Element")
//		Package = properties.NewClass("Package", Element)
//	)
//
//	func init() {
//		Element.Add(properties.NewDerivedUnion("ownedElement", Element))
//		Package.Add(properties.NewAssociation("packagedElement", Element, properties.Composite()))
//		properties.Subsets(Element.Property("ownedElement"), Package.Property("packagedElement"))
//	}
//
// Property lookup walks the generalization hierarchy, so a class sees the
// properties of its supertypes unless it redefines them.
package properties
