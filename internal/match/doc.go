// Package match suggests model names close to a misspelled one.
//
// Names are normalized (case folded, separators removed) and compared with
// the Levenshtein edit distance:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders known names by similarity to a wanted one
//   - Suggest: returns the single clear winner, if any
package match
