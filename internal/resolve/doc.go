// Package resolve provides the resolution pipeline that turns a parsed model
// graph into a Plan consumed by code generation.
//
// Resolution pipeline:
//  1. Classify elements into typed buckets (classes, enumerations, ...)
//  2. Build generalization/specialization edges
//  3. Propagate applied stereotypes down specializations
//  4. Drop metaclasses (Extension targets) and SimpleAttribute classes
//  5. Attach literal lists to enumerations
//  6. Resolve plain owned attributes
//  7. Resolve and classify both ends of every association
//  8. Link subsetting ends to their derived unions
//  9. Emit the held-back derived attributes and the operations
//
// Fatal model errors (unnamed navigable ends, duplicate derived unions,
// generalization cycles) stop resolution. Everything else is recorded in the
// plan's diagnostics.
package resolve
