// Package analyze provides package loading and status schema discovery.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build a
// canonical in-memory model of status enumerations: named integer types
// whose const members form a closed status-value set.
//
// Key types:
//   - SchemaID: package import path + type name
//   - StatusSchema: the ordered member set of one enumeration
//   - Member: const name, trimmed member name, numeric value, and the
//     optional wire-status annotation
package analyze
