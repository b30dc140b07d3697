// Package plan provides the resolution pipeline that turns validated
// schemas and directives into a final ResolvedPlan consumed by code
// generation.
//
// Resolution pipeline:
//  1. Analyze packages → schema set
//  2. Load YAML directives → validate per schema
//  3. For each accepted schema, derive the effective defaulting policy
//     (default failure member, bad-request member, wire-status map)
//  4. Emit diagnostics (rejected schemas, malformed annotations,
//     members falling back to the default wire status)
//
// Every value a resolved schema carries is derived exactly once here and
// shared by all emitters, so the internal family, the public family, and
// the protocol mapping can never disagree about policy.
package plan
