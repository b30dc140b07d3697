package plan

import (
	"resultgen/internal/analyze"
	"resultgen/internal/diagnostic"
)

// ResolvedPlan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type ResolvedPlan struct {
	// Schemas is the list of schemas that passed validation, with their
	// effective generation policy. Rejected schemas are absent.
	Schemas []ResolvedSchema
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedSchema is the immutable per-schema configuration shared by
// every emitter. It is derived once; emitters never re-derive policy
// from the raw schema or directive.
type ResolvedSchema struct {
	// Schema is the discovered status enumeration.
	Schema *analyze.StatusSchema
	// Prefix is the generated-identifier prefix (directive override or
	// the schema type name).
	Prefix string

	// Ok is the unique success sentinel.
	Ok analyze.Member
	// DefaultFailure is the member plain Failure construction uses.
	DefaultFailure analyze.Member
	// BadRequest is the member validation failures use.
	BadRequest analyze.Member

	// GenerateInternal selects the service (internal) family.
	GenerateInternal bool
	// GeneratePublic selects the API (public) family.
	GeneratePublic bool
	// IncludeProtocol selects the wire-status map and response adapter.
	IncludeProtocol bool

	// FallbackStatus is the wire status for members with no explicit
	// mapping. Only meaningful when IncludeProtocol is set.
	FallbackStatus int
	// StatusCodes lists explicitly mapped members in declaration order.
	// Members absent here resolve to FallbackStatus at runtime.
	StatusCodes []MemberStatus
}

// MemberStatus binds one schema member to its wire-level status code.
type MemberStatus struct {
	Member analyze.Member
	Code   int
}
