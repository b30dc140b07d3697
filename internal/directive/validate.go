package directive

import (
	"fmt"

	"resultgen/internal/analyze"
	"resultgen/internal/common"
	"resultgen/internal/diagnostic"
	"resultgen/internal/match"
)

// Validate validates a directive file against the discovered schema set.
// This is a structural validation step only; defaulting policy is applied
// later by the resolver. Errors are scoped to the offending schema entry
// so sibling schemas keep generating.
func Validate(cfg *ConfigFile, set *analyze.SchemaSet) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "directive file is nil", "", "")
		return res
	}

	if set == nil {
		res.AddError("schema_set_is_nil", "schema set is nil", "", "")
		return res
	}

	seen := map[string]struct{}{}

	for i := range cfg.Schemas {
		d := &cfg.Schemas[i]

		if d.Type == "" {
			res.AddError("missing_schema_type", "schema entry has no type", "", "")
			continue
		}

		if _, ok := seen[d.Type]; ok {
			res.AddError("duplicate_schema", fmt.Sprintf("schema %q configured twice", d.Type), d.Type, "")
			continue
		}

		seen[d.Type] = struct{}{}

		res.Merge(*validateOne(d, set))
	}

	return res
}

// validateOne validates a single schema directive. Errors are attributed
// to the entry, so one rejected schema never blocks its siblings.
func validateOne(d *SchemaDirective, set *analyze.SchemaSet) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	schema, ok := set.Resolve(d.Type)
	if !ok {
		res.AddErrorSuggest("schema_not_found",
			fmt.Sprintf("status schema %q not found in loaded packages", d.Type),
			d.Type, "",
			match.Suggest(d.Type, set.Names(), match.DefaultSuggestScore, match.DefaultMaxSuggestions))

		return res
	}

	validateSuccessMember(res, schema)
	validateMemberRefs(res, d, schema)

	if d.ProtocolMapping && !d.GeneratePublic() {
		res.AddError("protocol_requires_public",
			"protocolMapping needs the public family; set public: true", d.Type, "")
	}

	if d.FallbackStatus != nil {
		if s := int(*d.FallbackStatus); s < 100 || s > 599 {
			res.AddError("bad_fallback_status",
				fmt.Sprintf("fallbackStatus %d outside 100..599", s), d.Type, "")
		}
	}

	return res
}

// validateSuccessMember enforces the success-sentinel rule: exactly one
// member named "Ok". A schema failing this check is skipped entirely.
func validateSuccessMember(res *diagnostic.Diagnostics, schema *analyze.StatusSchema) {
	switch n := schema.CountNamed("Ok"); n {
	case 1:
		// ok
	case 0:
		res.AddError("missing_success_member",
			`missing success member: no member named "Ok"`, schema.ID.String(), "")
	default:
		res.AddError("missing_success_member",
			fmt.Sprintf(`missing unique success member: %d members named "Ok"`, n),
			schema.ID.String(), "")
	}
}

// validateMemberRefs checks that every member the directive names exists
// on the schema, suggesting close names for typos.
func validateMemberRefs(res *diagnostic.Diagnostics, d *SchemaDirective, schema *analyze.StatusSchema) {
	names := schema.MemberNames()

	check := func(code, ref string) {
		if ref == "" {
			return
		}

		if _, ok := schema.Member(ref); !ok {
			res.AddErrorSuggest(code,
				fmt.Sprintf("member %q not declared on %s", ref, schema.ID),
				schema.ID.String(), ref,
				match.Suggest(ref, names, match.DefaultSuggestScore, match.DefaultMaxSuggestions))
		}
	}

	check("unknown_default_failure", d.DefaultFailure)
	check("unknown_bad_request", d.BadRequest)

	// Deterministic diagnostics.
	for _, member := range common.SortedKeys(d.StatusCodes) {
		check("unknown_status_code_member", member)
	}
}
