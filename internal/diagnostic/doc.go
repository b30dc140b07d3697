// Package diagnostic provides structured errors, warnings, and infos
// reported by schema validation, directive resolution, and emission.
//
// Key capabilities:
//   - Missing success-member errors that skip a single schema
//   - Unknown member references with closest-name suggestions
//   - Malformed wire-status annotation warnings
//   - Unmapped member fallback warnings
package diagnostic
