package analyze

import (
	"strings"

	"resultgen/internal/common"
)

// SchemaID uniquely identifies a status schema by its package path and type name.
type SchemaID struct {
	PkgPath string // e.g., "resultgen/examples/orders"
	Name    string // e.g., "OrderStatus"
}

// String returns a human-readable representation of the SchemaID.
func (id SchemaID) String() string {
	if id.PkgPath == "" {
		return id.Name
	}

	return id.PkgPath + "." + id.Name
}

// Member describes a single declared member of a status schema.
type Member struct {
	// ConstName is the declared Go constant identifier (e.g., "OrderStatusOk").
	ConstName string
	// Name is the schema member name after type-name prefix trimming (e.g., "Ok").
	Name string
	// Value is the member's numeric value. Values need not be contiguous or unique.
	Value int64
	// HTTPStatus is the parsed wire-status annotation, if present and well formed.
	HTTPStatus *int
	// BadAnnotation holds the raw annotation text when it could not be parsed.
	BadAnnotation string
}

// StatusSchema is the ordered member set of one status enumeration.
type StatusSchema struct {
	ID SchemaID
	// PkgName is the declared package name (may differ from the import path base).
	PkgName string
	// Dir is the package source directory; generated files are written next
	// to the schema declaration.
	Dir string
	// Members in declaration order.
	Members []Member
}

// Member returns the member with the given (trimmed) name.
func (s *StatusSchema) Member(name string) (Member, bool) {
	for _, m := range s.Members {
		if m.Name == name {
			return m, true
		}
	}

	return Member{}, false
}

// CountNamed returns how many members carry the given (trimmed) name.
// Distinct const identifiers can trim to the same member name, so the
// success-sentinel check needs a count, not just a lookup.
func (s *StatusSchema) CountNamed(name string) int {
	n := 0

	for _, m := range s.Members {
		if m.Name == name {
			n++
		}
	}

	return n
}

// ZeroMember returns the first declared member with numeric value 0.
func (s *StatusSchema) ZeroMember() (Member, bool) {
	for _, m := range s.Members {
		if m.Value == 0 {
			return m, true
		}
	}

	return Member{}, false
}

// MemberNames returns all trimmed member names in declaration order.
func (s *StatusSchema) MemberNames() []string {
	names := make([]string, len(s.Members))
	for i, m := range s.Members {
		names[i] = m.Name
	}

	return names
}

// SchemaSet holds every status schema discovered in a load.
type SchemaSet struct {
	// Schemas in deterministic (package path, type name) order.
	Schemas []*StatusSchema
}

// Resolve looks up a schema by a directive reference of the form
// "pkg.TypeName", where pkg is either the package name, the full import
// path, or an import path suffix. A bare "TypeName" resolves only if it is
// unambiguous across the set.
func (ss *SchemaSet) Resolve(ref string) (*StatusSchema, bool) {
	dot := strings.LastIndex(ref, ".")
	if dot < 0 {
		var found *StatusSchema

		for _, s := range ss.Schemas {
			if s.ID.Name != ref {
				continue
			}

			if found != nil {
				return nil, false // ambiguous
			}

			found = s
		}

		return found, found != nil
	}

	pkgRef, name := ref[:dot], ref[dot+1:]

	for _, s := range ss.Schemas {
		if s.ID.Name != name {
			continue
		}

		if s.PkgName == pkgRef || s.ID.PkgPath == pkgRef ||
			common.PkgAlias(s.ID.PkgPath) == pkgRef ||
			strings.HasSuffix(s.ID.PkgPath, "/"+pkgRef) {
			return s, true
		}
	}

	return nil, false
}

// Names returns the schema identifiers in set order, for diagnostics.
func (ss *SchemaSet) Names() []string {
	names := make([]string, len(ss.Schemas))
	for i, s := range ss.Schemas {
		names[i] = s.ID.String()
	}

	return names
}
