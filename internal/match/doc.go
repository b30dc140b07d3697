// Package match provides name normalization, Levenshtein distance
// calculation, and closest-candidate ranking for schema member names.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - NormalizeIdent: normalizes identifiers for fuzzy comparison
//   - Suggest: ranks known names by similarity to a misspelled reference
package match
