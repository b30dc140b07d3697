// Package directive provides YAML parsing, defaulting, and validation for
// resultgen generation directives.
//
// The directive file is the single author-facing configuration surface:
// it selects which status schemas get Result families generated, which
// families to emit, and the defaulting policy for failure construction
// and wire-status mapping.
//
// # Schema Overview
//
// The directive file has the following structure:
//
//	version: "1"
//	packages:
//	  - ./...
//	schemas:
//	  - type: orders.OrderStatus
//	    prefix: Order              # generated identifier prefix
//	    internal: true             # emit the service (internal) family
//	    public: true               # emit the API (public) family
//	    protocolMapping: true      # emit the wire-status map + adapter
//	    defaultFailure: GeneralError
//	    badRequest: BadRequest
//	    fallbackStatus: 500
//	    statusCodes:               # overrides member annotations
//	      GeneralError: 500
//
// # Defaulting
//
//   - internal and public default to true; protocolMapping defaults to false.
//   - defaultFailure falls back to the schema's zero-valued member.
//   - badRequest falls back to a member named "BadRequest", then to the
//     effective default failure.
//   - fallbackStatus falls back to the resolver-level constant.
//
// Validation is structural: every referenced member must exist, and a
// schema is rejected outright when it does not carry exactly one member
// named "Ok".
package directive
