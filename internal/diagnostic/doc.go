// Package diagnostic provides structured warnings, errors, and notices
// collected while resolving a model.
//
// Key capabilities:
//   - Dangling subset references ("not a derived union")
//   - Redefinition and stereotype tagging notices
//   - Skipped association ends that point outside the class set
//   - Warnings promoted to errors and combined into one error for strict runs
package diagnostic
