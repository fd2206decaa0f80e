// Package gen renders a resolved model as Go source targeting the properties
// runtime package.
//
// Generation uses text/template + go/format for readable, deterministic code.
// The Writer collects descriptors through the resolve.Emitter calls and
// renders everything in Write, so declarations can refer to each other
// regardless of emission order.
//
// Output layout:
//   - Notices as line comments
//   - One var block of classes, supertypes first
//   - One var block of enumerations
//   - An init function adding attributes, associations, redefinitions and
//     derived unions, then linking union members and recording operations
package gen
