// Package gen provides deterministic Go code generation for Result
// families and wire-status mappings.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code emitted into the schema's own package.
//
// Artifacts per resolved schema:
//   - the service (internal) and API (public) Result families with their
//     construction, extraction, transformation, and propagation helpers
//   - the wire-status mapping, response adapter, and resolver
//     registration hook (optional)
//   - one shared support file per output package (detail map, absent-value
//     fault)
package gen
