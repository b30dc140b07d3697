package plan

import (
	"errors"
	"fmt"
	"strings"

	"resultgen/internal/analyze"
	"resultgen/internal/diagnostic"
	"resultgen/internal/directive"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// DefaultFallbackStatus is the wire status substituted for members
	// with no annotation and no directive override, when the directive
	// does not set fallbackStatus itself. Observed generator variants
	// disagreed on this constant, so it is explicit and configurable.
	DefaultFallbackStatus int
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		DefaultFallbackStatus: 500,
	}
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	set    *analyze.SchemaSet
	cfg    *directive.ConfigFile
	config ResolutionConfig
}

// NewResolver creates a new Resolver.
func NewResolver(set *analyze.SchemaSet, cfg *directive.ConfigFile, config ResolutionConfig) *Resolver {
	return &Resolver{
		set:    set,
		cfg:    cfg,
		config: config,
	}
}

// Resolve runs the full resolution pipeline and returns a ResolvedPlan.
// A schema that fails validation is skipped with diagnostics; its
// siblings are unaffected. Resolution itself is pure: the same schema
// set and directives always produce the same plan.
func (r *Resolver) Resolve() (*ResolvedPlan, error) {
	if r.cfg == nil {
		return nil, errors.New("directive file is required")
	}

	if r.set == nil {
		return nil, errors.New("schema set is required")
	}

	plan := &ResolvedPlan{
		Schemas:     []ResolvedSchema{},
		Diagnostics: diagnostic.Diagnostics{},
	}

	// Structural validation happens exactly once, here; the loop below
	// only skips entries the validator already rejected.
	plan.Diagnostics.Merge(*directive.Validate(r.cfg, r.set))

	seen := map[string]struct{}{}

	for i := range r.cfg.Schemas {
		d := &r.cfg.Schemas[i]
		if d.Type == "" {
			continue // missing_schema_type already reported
		}

		if _, dup := seen[d.Type]; dup {
			continue // duplicate_schema already reported
		}

		seen[d.Type] = struct{}{}

		schema, ok := r.set.Resolve(d.Type)
		if !ok {
			continue // schema_not_found already reported
		}

		if hasBlockingErrors(&plan.Diagnostics, d.Type, schema.ID.String()) {
			continue
		}

		resolved, ok := r.resolveSchema(d, schema, &plan.Diagnostics)
		if ok {
			plan.Schemas = append(plan.Schemas, resolved)
		}
	}

	return plan, nil
}

// hasBlockingErrors reports whether validation rejected the entry itself.
// A duplicate_schema error names the same type string as the entry it
// duplicates, so it never blocks the first occurrence.
func hasBlockingErrors(diags *diagnostic.Diagnostics, keys ...string) bool {
	for _, key := range keys {
		for _, e := range diags.ErrorsFor(key) {
			if e.Code != "duplicate_schema" {
				return true
			}
		}
	}

	return false
}

// resolveSchema derives the effective generation policy for one schema.
// The directive has already passed structural validation.
func (r *Resolver) resolveSchema(
	d *directive.SchemaDirective,
	schema *analyze.StatusSchema,
	diags *diagnostic.Diagnostics,
) (ResolvedSchema, bool) {
	id := schema.ID.String()

	okMember, _ := schema.Member("Ok")

	resolved := ResolvedSchema{
		Schema:           schema,
		Prefix:           d.Prefix,
		Ok:               okMember,
		GenerateInternal: d.GenerateInternal(),
		GeneratePublic:   d.GeneratePublic(),
		IncludeProtocol:  d.ProtocolMapping,
	}

	if resolved.Prefix == "" {
		resolved.Prefix = schema.ID.Name
	}

	failure, ok := r.resolveDefaultFailure(d, schema, diags)
	if !ok {
		return ResolvedSchema{}, false
	}

	resolved.DefaultFailure = failure

	if failure.Name == "Ok" {
		diags.AddWarning("default_failure_is_success",
			"default failure resolves to the success member; plain Failure construction will report Ok",
			id, failure.ConstName)
	}

	resolved.BadRequest = resolveBadRequest(d, schema, failure)

	if d.ProtocolMapping {
		r.resolveProtocol(d, schema, &resolved, diags)
	}

	diags.AddInfo("schema_resolved",
		fmt.Sprintf("%d members; internal=%t public=%t protocol=%t",
			len(schema.Members), resolved.GenerateInternal,
			resolved.GeneratePublic, resolved.IncludeProtocol),
		id, "")

	return resolved, true
}

// resolveDefaultFailure applies the defaulting chain for the failure
// member: explicit directive value, else the schema's zero-valued member.
func (r *Resolver) resolveDefaultFailure(
	d *directive.SchemaDirective,
	schema *analyze.StatusSchema,
	diags *diagnostic.Diagnostics,
) (analyze.Member, bool) {
	if d.DefaultFailure != "" {
		m, _ := schema.Member(d.DefaultFailure)
		return m, true
	}

	zero, ok := schema.ZeroMember()
	if !ok {
		diags.AddError("no_zero_member",
			"no member has value 0 and no defaultFailure is configured; set defaultFailure explicitly",
			schema.ID.String(), "")

		return analyze.Member{}, false
	}

	return zero, true
}

// resolveBadRequest applies the defaulting chain for the validation
// failure member: explicit directive value, else a member literally
// named "BadRequest", else the effective default failure.
func resolveBadRequest(
	d *directive.SchemaDirective,
	schema *analyze.StatusSchema,
	defaultFailure analyze.Member,
) analyze.Member {
	if d.BadRequest != "" {
		m, _ := schema.Member(d.BadRequest)
		return m
	}

	if m, ok := schema.Member("BadRequest"); ok {
		return m
	}

	return defaultFailure
}

// resolveProtocol builds the wire-status map: directive overrides win
// over member annotations; everything else resolves to the fallback at
// runtime. Malformed annotations and fallback substitutions surface as
// warnings so misconfiguration is visible at generation time.
func (r *Resolver) resolveProtocol(
	d *directive.SchemaDirective,
	schema *analyze.StatusSchema,
	resolved *ResolvedSchema,
	diags *diagnostic.Diagnostics,
) {
	id := schema.ID.String()

	resolved.FallbackStatus = r.config.DefaultFallbackStatus
	if d.FallbackStatus != nil {
		resolved.FallbackStatus = int(*d.FallbackStatus)
	}

	var unmapped []string

	for _, m := range schema.Members {
		if m.BadAnnotation != "" {
			diags.AddWarning("bad_status_annotation",
				fmt.Sprintf("malformed wire-status annotation %q ignored", m.BadAnnotation),
				id, m.ConstName)
		}

		if code, ok := d.StatusCodes[m.Name]; ok {
			resolved.StatusCodes = append(resolved.StatusCodes, MemberStatus{Member: m, Code: int(code)})
			continue
		}

		if m.HTTPStatus != nil {
			resolved.StatusCodes = append(resolved.StatusCodes, MemberStatus{Member: m, Code: *m.HTTPStatus})
			continue
		}

		unmapped = append(unmapped, m.Name)
	}

	if len(unmapped) > 0 {
		diags.AddWarning("unmapped_status_member",
			fmt.Sprintf("members %s fall back to wire status %d",
				strings.Join(unmapped, ", "), resolved.FallbackStatus),
			id, "")
	}
}
