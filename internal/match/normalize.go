package match

import "strings"

// NormalizeIdent normalizes an identifier for fuzzy comparison:
// case-fold to lower and strip "_", "-" and space separators.
// Schema member names are plain Go identifiers, so no CamelCase
// tokenization is needed beyond folding.
func NormalizeIdent(s string) string {
	var b strings.Builder

	for _, r := range s {
		switch r {
		case '_', '-', ' ':
			continue
		}

		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}
