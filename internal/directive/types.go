package directive

// ConfigFile is the parsed representation of a resultgen.yaml file.
type ConfigFile struct {
	// Version of the directive file format.
	Version string `yaml:"version"`
	// Packages are go/packages load patterns for schema discovery.
	Packages []string `yaml:"packages,omitempty"`
	// Schemas lists the per-schema generation directives.
	Schemas []SchemaDirective `yaml:"schemas"`
}

// SchemaDirective configures generation for a single status schema.
type SchemaDirective struct {
	// Type references the schema as "pkg.TypeName".
	Type string `yaml:"type"`
	// Prefix overrides the generated-identifier prefix (default: type name).
	Prefix string `yaml:"prefix,omitempty"`
	// Internal toggles the service (internal) Result family. Default true.
	Internal *bool `yaml:"internal,omitempty"`
	// Public toggles the API (public) Result family. Default true.
	Public *bool `yaml:"public,omitempty"`
	// ProtocolMapping toggles the wire-status map and response adapter.
	ProtocolMapping bool `yaml:"protocolMapping,omitempty"`
	// DefaultFailure names the member used by plain Failure construction.
	DefaultFailure string `yaml:"defaultFailure,omitempty"`
	// BadRequest names the member used by validation failures.
	BadRequest string `yaml:"badRequest,omitempty"`
	// FallbackStatus is the wire status for members with no mapping.
	FallbackStatus *StatusCode `yaml:"fallbackStatus,omitempty"`
	// StatusCodes overrides or supplements per-member annotations.
	StatusCodes map[string]StatusCode `yaml:"statusCodes,omitempty"`
}

// GenerateInternal reports whether the internal family is requested,
// applying the default.
func (d *SchemaDirective) GenerateInternal() bool {
	return d.Internal == nil || *d.Internal
}

// GeneratePublic reports whether the public family is requested,
// applying the default.
func (d *SchemaDirective) GeneratePublic() bool {
	return d.Public == nil || *d.Public
}
